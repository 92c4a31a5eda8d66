package scoring

import "cognovoid/internal/model"

// Specs is the canonical feature table, consolidating the alias and range
// tables that used to be scattered per-route. Order here is the canonical
// vector order. Loaded once, never mutated.
var Specs = []model.FeatureSpec{
	{Name: "sleep", Aliases: []string{"sleep", "Sleep_Hours_Night", "sleep_hours"}, Min: 0, Max: 12, Positive: true},
	{Name: "stress", Aliases: []string{"stress", "Work_Stress_Level", "stress_level"}, Min: 0, Max: 5},
	{Name: "mood", Aliases: []string{"mood", "mood_score"}, Min: 0, Max: 5, Positive: true, Default: 2.5},
	{Name: "focus", Aliases: []string{"focus"}, Min: 0, Max: 5, Positive: true, Default: 2.5},
	{Name: "screen", Aliases: []string{"screen", "screenTime", "Screen_Time_Hours_Day", "screen_time"}, Min: 0, Max: 16},
	{Name: "anxiety", Aliases: []string{"anxiety"}, Min: 0, Max: 5},
	{Name: "fatigue", Aliases: []string{"fatigue", "fatigue_level"}, Min: 0, Max: 5},
	{Name: "loneliness", Aliases: []string{"loneliness", "Loneliness"}, Min: 0, Max: 5},
	{Name: "socialSupport", Aliases: []string{"socialSupport", "Social_Support"}, Min: 0, Max: 5, Positive: true, Default: 2.5},
	{Name: "workHours", Aliases: []string{"workHours", "Work_Hours_Per_Week"}, Min: 0, Max: 80},
	{Name: "socialMedia", Aliases: []string{"socialMedia", "Social_Media_Hours_Day"}, Min: 0, Max: 16},
	{Name: "exercise", Aliases: []string{"exercise", "exercise_minutes"}, Min: 0, Max: 120, Positive: true},
	{Name: "socialHours", Aliases: []string{"socialHours", "social_hours"}, Min: 0, Max: 12, Positive: true},
	{Name: "pendingTasks", Aliases: []string{"pendingTasks", "daily_pending_tasks"}, Min: 0, Max: 30},
	{Name: "interruptions", Aliases: []string{"interruptions"}, Min: 0, Max: 50},
	{Name: "coffee", Aliases: []string{"coffee", "coffee_cups"}, Min: 0, Max: 10},
}

// CategoricalSpecs holds the categorical features with their fixed
// label -> severity encodings.
var CategoricalSpecs = []model.CategoricalSpec{
	{
		Name:    "diet",
		Aliases: []string{"diet", "dietQuality", "diet_quality"},
		Scores:  map[string]int{"good": 10, "average": 45, "poor": 80},
		Default: "average",
	},
	{
		Name:    "weather",
		Aliases: []string{"weather", "Weather"},
		Scores:  map[string]int{"sunny": 15, "cloudy": 35, "rainy": 55, "stormy": 75},
		Default: "cloudy",
	},
}
