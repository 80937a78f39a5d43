package constants

const (
	// (F/m) vacuum permittivity
	VacuumPermittivity = 8.8541878188e-12
	// (m/F)
	InvVacuumPermittivity = 1. / VacuumPermittivity
	// (C) elementary charge
	ElementaryCharge = 1.602176634e-19
	// (kg) atomic mass unit
	AMU = 1.66053906892e-27
	// (kg)
	ElectronMass = 9.1093837139e-31
	// (J/K)
	Boltzmann = 1.380649e-23
	// (K) temperature equivalent of one electron volt
	EVTemperature = ElementaryCharge / Boltzmann
)
