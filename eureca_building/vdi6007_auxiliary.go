package eureca_building

import "math"

/*
Auxiliary routines of the VDI 6007-1 two-mass network: the parallel
combination of single-layer-equivalent RC pairs, the triangle to star
transform of the coupling resistances and the sky/ground long-wave radiation
temperatures.
*/

/*
impedence_parallel folds a set of (R1, C1) surface pairs into one equivalent
pair at the reference angular frequency.

Args:

	r1: equivalent resistances, K/W, one per surface
	c1: equivalent capacities, J/K, one per surface
	t_bt: reference period, days (default 7 when <= 0)

Returns:

	the equivalent (R1, C1) of the parallel combination.

Notes:

	VDI 6007-1 eq. 22, applied pairwise left to right. Surfaces with zero
	capacity contribute a plain parallel resistance.
*/
func impedence_parallel(r1 []float64, c1 []float64, t_bt float64) (float64, float64) {
	if t_bt <= 0 {
		t_bt = t_bt_days
	}
	omega := 2 * math.Pi / (86400 * t_bt)

	r_eq := r1[0]
	c_eq := c1[0]
	for i := 1; i < len(r1); i++ {
		ra, ca := r_eq, c_eq
		rb, cb := r1[i], c1[i]

		if ca == 0 && cb == 0 {
			r_eq = ra * rb / (ra + rb)
			c_eq = 0
			continue
		}

		den_r := math.Pow(ca+cb, 2) + math.Pow(omega*(ra+rb)*ca*cb, 2)
		num_r := ra*math.Pow(ca, 2) + rb*math.Pow(cb, 2) + math.Pow(omega, 2)*ra*rb*(ra+rb)*math.Pow(ca*cb, 2)

		den_c := ca + cb + math.Pow(omega, 2)*(math.Pow(ra, 2)*ca+math.Pow(rb, 2)*cb)*ca*cb

		r_eq = num_r / den_r
		c_eq = den_r / den_c
	}
	return r_eq, c_eq
}

/*
tri2star converts the triangle of coupling resistances between the indoor
air, the outer-surface and the inner-surface nodes into the equivalent star.

Args:

	t1: resistance between the outer and the inner surface node, K/W
	t2: resistance between the inner surface node and the air, K/W
	t3: resistance between the outer surface node and the air, K/W

Returns:

	the star resistances (air branch, outer branch, inner branch), K/W.
*/
func tri2star(t1, t2, t3 float64) (float64, float64, float64) {
	t_total := t1 + t2 + t3
	s1 := t2 * t3 / t_total
	s2 := t1 * t3 / t_total
	s3 := t1 * t2 / t_total
	return s1, s2, s3
}

/*
long_wave_radiation returns the apparent radiation temperatures of the
atmosphere and of the ground for the external long-wave balance.

Args:

	theta_ext: outdoor air temperature, degree C

Returns:

	(theta_atm, theta_erd): atmosphere and ground radiation temperatures,
	degree C.

Notes:

	Atmospheric emission from the 9.9e-14 * T^6 fit, ground emission grey at
	0.93, both mapped back to a temperature through the ground emissivity.
*/
func long_wave_radiation(theta_ext float64) (float64, float64) {
	t_k := theta_ext + 273.15

	e_atm := 9.9 * 5.671e-14 * math.Pow(t_k, 6)
	e_erd := 0.93 * 5.671e-8 * math.Pow(t_k, 4)

	theta_atm := math.Pow(e_atm/(0.93*5.671e-8), 0.25) - 273.15
	theta_erd := math.Pow(e_erd/(0.93*5.671e-8), 0.25) - 273.15

	return theta_atm, theta_erd
}
