package timeline

import "sort"

// GroupByDay buckets segments by local calendar day, most recent day first.
// Within a day, segments order most-recent-start-first. Grouping is stable
// for segments sharing a start instant.
func GroupByDay(segments []DaySegment) []DayBucket {
	byDay := make(map[int64]*DayBucket)
	for _, s := range segments {
		key := s.Date.Unix()
		bucket, ok := byDay[key]
		if !ok {
			bucket = &DayBucket{Date: s.Date}
			byDay[key] = bucket
		}
		bucket.Segments = append(bucket.Segments, s)
	}

	buckets := make([]DayBucket, 0, len(byDay))
	for _, b := range byDay {
		sort.SliceStable(b.Segments, func(i, j int) bool {
			return b.Segments[i].Start.After(b.Segments[j].Start)
		})
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date.After(buckets[j].Date)
	})
	return buckets
}
