// Package distance describes the distance between two instants in words,
// such as "about 3 hours" or "in 2 days".
//
// Measure picks a phrase token and count using fixed thresholds; a Humanizer
// localizes the result through the pluralized catalogs of package locale.
//
//	s, err := distance.Between(now, deadline, distance.Options{AddSuffix: true})
//	// "in about 2 hours"
//
//	s, err = distance.Between(now, createdAt, distance.Options{Locale: "es", AddSuffix: true})
//	// "hace 3 días"
package distance
