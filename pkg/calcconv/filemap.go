package calcconv

// Mapping pairs an input filename with its descriptive output filename.
// Both reside in the configured data directory.
type Mapping struct {
	Input  string
	Output string
}

// DefaultFileMap returns the configured conversions as an ordered list.
// Processing and console reporting follow this order.
func DefaultFileMap() []Mapping {
	return []Mapping{
		{"calculation.csv", "calc_15min_consumption_2024.json"},
		{"calculation (1).csv", "calc_15min_pv_2025.json"},
		{"calculation (2).csv", "calc_15min_partial_2025.json"},
		{"calculation (3).csv", "calc_15min_generator_2025.json"},
		{"calculation (4).csv", "calc_15min_battery_2024.json"},
		{"calculation_per_day.csv", "calc_daily_consumption_2024.json"},
		{"calculation_per_day (1).csv", "calc_daily_simple_2024.json"},
		{"calculation_per_day (2).csv", "calc_daily_pv_2024.json"},
		{"calculation_per_month.csv", "calc_monthly_2024.json"},
		{"input_profiles.csv", "profiles_15min_consumption_2024.json"},
		{"input_profiles (1).csv", "profiles_15min_pv_2025.json"},
		{"input_profiles (2).csv", "profiles_15min_partial_2025.json"},
		{"input_profiles (3).csv", "profiles_15min_extra_2025.json"},
		{"input_profiles (4).csv", "profiles_15min_full_2024.json"},
	}
}
