package recommend

import (
	"testing"

	"collab-filter/internal/app/similarity"
	"collab-filter/internal/app/testutil"
)

func BenchmarkTopMatches(b *testing.B) {
	g := testutil.PseudoRandomGrid(b, 200, 400, 99, 3)
	for _, metric := range []similarity.Metric{similarity.MetricPearson, similarity.MetricDistance} {
		b.Run(metric.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := TopMatches(g, i%g.Rows(), Options{K: DefaultMatchK, Metric: metric}); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkGetRecommendations(b *testing.B) {
	g := testutil.PseudoRandomGrid(b, 200, 400, 7, 3)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := GetRecommendations(g, i%g.Rows(), DefaultRecommendationOptions()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCalculateSimilarItems(b *testing.B) {
	g := testutil.PseudoRandomGrid(b, 100, 150, 13, 4)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := CalculateSimilarItems(g, DefaultItemK, nil); err != nil {
			b.Fatal(err)
		}
	}
}
