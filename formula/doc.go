// Package formula provides closed-form calculations for sizing and
// diagnosing compressed-air systems.
//
// The formulas fall into a few groups:
//
//   - [MotorPowerKW]: three-phase input power
//   - [OilFloodedScrewOperatingTempF]: minimum operating temperature to keep
//     an oil-flooded screw above its pressure dewpoint
//   - [AmbientPSIAForAltitudeInFeet], [AltitudeFeetFromPSIA]: barometric
//     pressure and altitude
//   - [PumpupTimeInSeconds], [LeakRateCFM], [RefillRateCFM],
//     [SystemCapacityCF], [EventStorageCF]: receiver dynamics and sizing
//   - [VaporPressureOfWaterInPsiForTemp], [SCFMFromACFM], [ACFMFromSCFM]:
//     humidity corrected flow conversion
//   - [PipeDiamInForVelocity], [VelocityInPipeFPS],
//     [AirDensityPoundsPerCubicFoot]: distribution piping
//   - [MappedValue], [GearSpeedFeetPerMinute], [OilCarryoverGallons],
//     [OilCarryoverConcentrationPPM]: general helpers
//
// Every function is pure and safe for concurrent use. Parameter names carry
// their unit: PSIG is gauge pressure, PSIA is absolute pressure, CFM is cubic
// feet per minute.
//
// # Domain errors
//
// A formula whose inputs are physically meaningless returns 0 and a
// [*DomainError] naming the first offending parameter. Every such error
// wraps [ErrOutOfDomain]:
//
//	kw, err := formula.MotorPowerKW(480, 0, 0.85)
//	if errors.Is(err, formula.ErrOutOfDomain) {
//	    // amps must be positive
//	}
package formula
