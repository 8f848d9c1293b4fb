package weather

import "github.com/elara/elara-outfits/internal/types"

// conditionCodes groups WeatherAPI.com condition codes by the simplified
// category the scorer's reason strings use.
var conditionCodes = []struct {
	condition types.WeatherCondition
	codes     []int
}{
	{types.ConditionSunny, []int{1000}},
	{types.ConditionCloudy, []int{1003, 1006, 1009}},
	{types.ConditionRainy, []int{1063, 1180, 1183, 1186, 1189, 1192, 1195, 1240, 1243, 1246}},
	{types.ConditionSnowy, []int{1066, 1114, 1117, 1210, 1213, 1216, 1219, 1222, 1225, 1255, 1258, 1261, 1264}},
	{types.ConditionStormy, []int{1087, 1273, 1276, 1279, 1282}},
}

// mapConditionCode maps a provider condition code to a category, defaulting
// to cloudy for codes we do not recognize.
func mapConditionCode(code int) types.WeatherCondition {
	for _, group := range conditionCodes {
		for _, c := range group.codes {
			if c == code {
				return group.condition
			}
		}
	}
	return types.ConditionCloudy
}
