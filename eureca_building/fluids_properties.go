package eureca_building

// Specific heat of air, J/(kg K)
func get_c_a() float64 {
	return 1005.0
}

// Density of air, kg/m3
func get_rho_a() float64 {
	return 1.2
}

// Latent heat of vaporization of water, J/kg
func get_l_wtr() float64 {
	return 2501000.0
}

// Stefan-Boltzmann constant, W/(m2 K4)
func get_sgm() float64 {
	return 5.67e-8
}

// Long-wave emissivity of building surfaces
func get_eps() float64 {
	return 0.9
}

// Atmospheric pressure, Pa
func get_p_atm() float64 {
	return 101325.0
}
