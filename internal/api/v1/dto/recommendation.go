package dto

import "collab-filter/internal/app/recommend"

// EntityURI is the :id path parameter of user and item routes.
type EntityURI struct {
	ID int `uri:"id" binding:"min=0"`
}

// RankQuery holds the optional k and metric query parameters.
type RankQuery struct {
	K      *int   `form:"k" binding:"omitempty,min=1,max=10000"`
	Metric string `form:"metric"`
}

// SimilarityQuery is GET /similarity?a=&b=&metric=
type SimilarityQuery struct {
	A      *int   `form:"a" binding:"required,min=0"`
	B      *int   `form:"b" binding:"required,min=0"`
	Metric string `form:"metric"`
}

type SimilarityResponse struct {
	A      int     `json:"a"`
	B      int     `json:"b"`
	Metric string  `json:"metric"`
	Score  float64 `json:"score"`
}

// RankingResponse wraps one ranked list. Metric is empty for rankings read
// from the item index, which always uses distance.
type RankingResponse struct {
	Entity  int                `json:"entity"`
	Kind    string             `json:"kind"`
	Metric  string             `json:"metric,omitempty"`
	K       int                `json:"k"`
	Results []recommend.Scored `json:"results"`
}

type GridResponse struct {
	Rows    int     `json:"rows"`
	Cols    int     `json:"cols"`
	Rated   int     `json:"rated"`
	Density float64 `json:"density"`
}
