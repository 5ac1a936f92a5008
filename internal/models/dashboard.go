package models

import "time"

type TimelineItem struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Date   string `json:"date"`
	Status Status `json:"status"`
	Icon   string `json:"icon"`
}

// MetricSeries is a labelled time series; Labels and Values have equal length.
type MetricSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

type Update struct {
	Title string    `json:"title"`
	At    time.Time `json:"at"`
}
