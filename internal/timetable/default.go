package timetable

// Default returns the built-in academic timetable used until the user
// adopts a digitized or imported one.
func Default() Week {
	return Week{
		"Monday": {
			{Time: "09:00", End: "09:50", Title: "MATH F102", Type: "L3", Location: "F104"},
			{Time: "10:00", End: "10:50", Title: "PHY F101", Type: "L2", Location: "F105"},
			{Time: "11:00", End: "12:50", Title: "CS F111", Type: "P2", Location: "D313"},
			{Time: "16:00", End: "16:50", Title: "MATH F113", Type: "L1", Location: "F103"},
			{Time: "17:00", End: "17:50", Title: "EEE F111", Type: "L2", Location: "F105"},
			{Time: "18:00", End: "18:50", Title: "BITS F102", Type: "L1", Location: "F105"},
		},
		"Tuesday": {
			{Time: "08:00", End: "08:50", Title: "EEE F111", Type: "L2", Location: "F105"},
			{Time: "09:00", End: "09:50", Title: "CS F111", Type: "L1", Location: "F105"},
			{Time: "17:00", End: "17:50", Title: "MATH F102", Type: "T12", Location: "G104"},
		},
		"Wednesday": {
			{Time: "08:00", End: "08:50", Title: "PHY F101", Type: "T9", Location: "I211"},
			{Time: "09:00", End: "09:50", Title: "MATH F102", Type: "L3", Location: "F104"},
			{Time: "10:00", End: "10:50", Title: "PHY F101", Type: "L2", Location: "F105"},
			{Time: "16:00", End: "16:50", Title: "MATH F113", Type: "L1", Location: "F103"},
		},
		"Thursday": {
			{Time: "08:00", End: "08:50", Title: "EEE F111", Type: "L2", Location: "F105"},
			{Time: "09:00", End: "09:50", Title: "CS F111", Type: "L1", Location: "F105"},
			{Time: "10:00", End: "11:50", Title: "PHY F101", Type: "P4", Location: "A222"},
			{Time: "14:00", End: "14:50", Title: "HSS F101", Type: "L5", Location: "F103"},
			{Time: "15:00", End: "15:50", Title: "MATH F113", Type: "T8", Location: "G208"},
		},
		"Friday": {
			{Time: "08:00", End: "08:50", Title: "EEE F111", Type: "T8", Location: "J119"},
			{Time: "09:00", End: "09:50", Title: "MATH F102", Type: "L3", Location: "F104"},
			{Time: "14:00", End: "14:50", Title: "HSS F101", Type: "L5", Location: "F103"},
			{Time: "16:00", End: "16:50", Title: "MATH F113", Type: "L1", Location: "F103"},
			{Time: "17:00", End: "17:50", Title: "CS F111", Type: "L1", Location: "F105"},
		},
		"Saturday": {},
		"Sunday":   {},
	}
}
