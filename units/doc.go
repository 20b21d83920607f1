// Package units provides scalar conversions between the measurement systems
// used on compressed-air equipment.
//
// Every conversion is a plain func(float64) float64 named after its output
// and input unit, and each has an inverse:
//
//   - temperature: °F, °C, K, °R
//   - pressure: psi, kPa, bar, inHg, mmHg, inH₂O, mmH₂O
//   - length: ft, m, in, mm
//   - volume: gal, ft³, m³, L
//   - power, voltage and current: kW, hp, Vrms, Vpeak, FLA, wye-delta amps
//   - flow and force: CFM, m³/min, N, lbf
//
// No input is validated. Temperatures below absolute zero convert like any
// other number.
package units
