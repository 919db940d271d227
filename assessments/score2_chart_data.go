package assessments

import "github.com/intervention-engine/cvriskservice/engine"

// The SCORE2 chart cells, one table per sex and risk region.  Dimensions
// are [smoking][age band][systolic band][cholesterol band] following the
// chart axes declared in score2.go.  Values are 10-year risk percentages
// to one decimal place and are normative data; they must not be edited
// except against the published chart.

var score2Charts = map[engine.Sex]map[engine.RiskRegion][2][6][4][4]float64{
	engine.SexMale:   score2ChartMale,
	engine.SexFemale: score2ChartFemale,
}

var score2ChartMale = map[engine.RiskRegion][2][6][4][4]float64{
	engine.RegionLow: {
		{
			{{0.8, 1.0, 1.2, 1.4}, {1.1, 1.3, 1.6, 1.9}, {1.4, 1.7, 2.0, 2.4}, {1.9, 2.2, 2.7, 3.2}},
			{{1.2, 1.4, 1.6, 1.9}, {1.5, 1.7, 2.0, 2.4}, {1.9, 2.2, 2.6, 3.1}, {2.5, 2.9, 3.4, 4.0}},
			{{1.6, 1.9, 2.1, 2.5}, {2.0, 2.4, 2.7, 3.1}, {2.6, 3.0, 3.4, 3.9}, {3.3, 3.7, 4.3, 4.9}},
			{{2.3, 2.6, 2.9, 3.2}, {2.8, 3.2, 3.6, 4.0}, {3.5, 3.9, 4.4, 5.0}, {4.3, 4.9, 5.5, 6.1}},
			{{3.2, 3.5, 3.9, 4.3}, {3.9, 4.3, 4.7, 5.2}, {4.7, 5.2, 5.7, 6.3}, {5.7, 6.3, 6.9, 7.6}},
			{{4.5, 4.8, 5.2, 5.6}, {5.3, 5.7, 6.2, 6.6}, {6.3, 6.8, 7.3, 7.9}, {7.5, 8.1, 8.7, 9.4}},
		},
		{
			{{1.6, 1.9, 2.2, 2.7}, {2.1, 2.5, 2.9, 3.5}, {2.7, 3.2, 3.9, 4.6}, {3.5, 4.2, 5.0, 6.0}},
			{{2.1, 2.4, 2.9, 3.3}, {2.7, 3.1, 3.7, 4.3}, {3.4, 4.0, 4.7, 5.5}, {4.4, 5.2, 6.0, 7.1}},
			{{2.8, 3.2, 3.6, 4.2}, {3.5, 4.0, 4.6, 5.2}, {4.4, 5.0, 5.8, 6.6}, {5.5, 6.3, 7.2, 8.3}},
			{{3.6, 4.1, 4.6, 5.2}, {4.5, 5.1, 5.7, 6.4}, {5.6, 6.3, 7.0, 7.9}, {6.9, 7.7, 8.6, 9.7}},
			{{4.8, 5.3, 5.8, 6.4}, {5.8, 6.4, 7.1, 7.8}, {7.1, 7.8, 8.5, 9.4}, {8.6, 9.4, 10.3, 11.3}},
			{{6.4, 6.8, 7.4, 7.9}, {7.6, 8.1, 8.8, 9.4}, {9.0, 9.6, 10.4, 11.2}, {10.6, 11.4, 12.3, 13.2}},
		},
	},
	engine.RegionModerate: {
		{
			{{0.9, 1.1, 1.4, 1.7}, {1.3, 1.5, 1.8, 2.2}, {1.7, 2.0, 2.5, 3.0}, {2.2, 2.7, 3.3, 4.0}},
			{{1.3, 1.6, 1.9, 2.3}, {1.8, 2.1, 2.5, 3.0}, {2.3, 2.7, 3.3, 3.9}, {3.0, 3.6, 4.3, 5.0}},
			{{1.9, 2.2, 2.6, 3.0}, {2.5, 2.9, 3.3, 3.9}, {3.2, 3.7, 4.3, 5.0}, {4.1, 4.7, 5.5, 6.4}},
			{{2.8, 3.2, 3.6, 4.1}, {3.5, 4.0, 4.5, 5.1}, {4.4, 5.0, 5.6, 6.4}, {5.5, 6.2, 7.1, 8.0}},
			{{4.0, 4.4, 4.9, 5.4}, {4.9, 5.4, 6.0, 6.7}, {6.0, 6.7, 7.4, 8.2}, {7.4, 8.2, 9.1, 10.0}},
			{{5.7, 6.2, 6.7, 7.2}, {6.9, 7.4, 8.0, 8.7}, {8.2, 8.9, 9.7, 10.5}, {9.9, 10.7, 11.6, 12.5}},
		},
		{
			{{1.9, 2.3, 2.7, 3.3}, {2.5, 3.0, 3.7, 4.4}, {3.3, 4.0, 4.9, 5.9}, {4.4, 5.4, 6.5, 7.8}},
			{{2.5, 3.0, 3.5, 4.2}, {3.3, 3.9, 4.6, 5.5}, {4.3, 5.1, 6.0, 7.1}, {5.6, 6.7, 7.9, 9.3}},
			{{3.4, 3.9, 4.6, 5.3}, {4.4, 5.1, 5.9, 6.8}, {5.6, 6.5, 7.5, 8.6}, {7.1, 8.2, 9.5, 11.0}},
			{{4.6, 5.2, 5.9, 6.7}, {5.8, 6.5, 7.4, 8.3}, {7.2, 8.2, 9.2, 10.4}, {9.0, 10.2, 11.5, 13.0}},
			{{6.2, 6.9, 7.6, 8.4}, {7.6, 8.4, 9.3, 10.3}, {9.3, 10.3, 11.4, 12.5}, {11.4, 12.6, 13.8, 15.3}},
			{{8.3, 9.0, 9.7, 10.5}, {10.0, 10.8, 11.7, 12.6}, {11.9, 12.9, 13.9, 15.1}, {14.3, 15.4, 16.6, 17.9}},
		},
	},
	engine.RegionHigh: {
		{
			{{0.7, 0.9, 1.2, 1.5}, {1.0, 1.3, 1.6, 2.0}, {1.5, 1.8, 2.3, 2.9}, {2.0, 2.6, 3.2, 4.0}},
			{{1.1, 1.4, 1.7, 2.1}, {1.5, 1.9, 2.3, 2.8}, {2.1, 2.6, 3.2, 3.9}, {2.9, 3.6, 4.3, 5.3}},
			{{1.7, 2.1, 2.4, 2.9}, {2.3, 2.7, 3.3, 3.9}, {3.1, 3.7, 4.4, 5.2}, {4.1, 4.9, 5.8, 6.9}},
			{{2.6, 3.1, 3.5, 4.1}, {3.4, 4.0, 4.6, 5.3}, {4.5, 5.2, 6.0, 6.9}, {5.9, 6.8, 7.8, 9.0}},
			{{4.0, 4.5, 5.1, 5.8}, {5.1, 5.8, 6.5, 7.3}, {6.5, 7.3, 8.2, 9.3}, {8.2, 9.3, 10.4, 11.7}},
			{{6.1, 6.7, 7.3, 8.1}, {7.6, 8.3, 9.1, 10.0}, {9.4, 10.3, 11.2, 12.3}, {11.6, 12.7, 13.9, 15.2}},
		},
		{
			{{1.6, 2.1, 2.6, 3.2}, {2.3, 2.9, 3.6, 4.5}, {3.2, 4.1, 5.1, 6.3}, {4.5, 5.7, 7.1, 8.8}},
			{{2.3, 2.9, 3.5, 4.3}, {3.2, 3.9, 4.8, 5.8}, {4.4, 5.4, 6.5, 7.9}, {6.0, 7.3, 8.9, 10.7}},
			{{3.3, 4.0, 4.7, 5.6}, {4.5, 5.3, 6.3, 7.4}, {5.9, 7.0, 8.3, 9.9}, {7.9, 9.4, 11.1, 13.0}},
			{{4.7, 5.5, 6.3, 7.3}, {6.2, 7.1, 8.2, 9.5}, {8.0, 9.2, 10.7, 12.3}, {10.4, 12.0, 13.7, 15.8}},
			{{6.7, 7.5, 8.5, 9.6}, {8.5, 9.6, 10.7, 12.1}, {10.8, 12.1, 13.6, 15.2}, {13.6, 15.2, 17.0, 19.0}},
			{{9.4, 10.3, 11.3, 12.4}, {11.7, 12.8, 14.0, 15.3}, {14.4, 15.7, 17.2, 18.7}, {17.6, 19.3, 21.0, 22.9}},
		},
	},
	engine.RegionVeryHigh: {
		{
			{{1.7, 2.1, 2.5, 3.1}, {2.3, 2.8, 3.4, 4.1}, {3.1, 3.7, 4.6, 5.6}, {4.1, 5.0, 6.1, 7.5}},
			{{2.4, 2.9, 3.5, 4.1}, {3.2, 3.9, 4.6, 5.5}, {4.3, 5.1, 6.0, 7.2}, {5.6, 6.7, 7.9, 9.4}},
			{{3.6, 4.1, 4.8, 5.6}, {4.6, 5.3, 6.2, 7.2}, {5.9, 6.9, 8.0, 9.3}, {7.6, 8.9, 10.3, 11.9}},
			{{5.1, 5.9, 6.7, 7.6}, {6.5, 7.4, 8.4, 9.5}, {8.2, 9.3, 10.5, 12.0}, {10.3, 11.7, 13.2, 15.0}},
			{{7.4, 8.2, 9.2, 10.2}, {9.2, 10.2, 11.3, 12.5}, {11.3, 12.5, 13.8, 15.3}, {13.9, 15.3, 16.9, 18.7}},
			{{10.7, 11.6, 12.5, 13.6}, {12.8, 13.9, 15.1, 16.3}, {15.4, 16.7, 18.1, 19.5}, {18.5, 20.0, 21.6, 23.3}},
		},
		{
			{{3.4, 4.2, 5.1, 6.2}, {4.6, 5.6, 6.8, 8.3}, {6.2, 7.5, 9.1, 11.1}, {8.3, 10.0, 12.2, 14.7}},
			{{4.7, 5.5, 6.6, 7.8}, {6.1, 7.3, 8.7, 10.3}, {8.1, 9.6, 11.3, 13.4}, {10.5, 12.5, 14.7, 17.4}},
			{{6.3, 7.4, 8.5, 9.9}, {8.1, 9.5, 11.0, 12.7}, {10.5, 12.1, 14.0, 16.2}, {13.4, 15.4, 17.8, 20.5}},
			{{8.6, 9.7, 11.0, 12.5}, {10.8, 12.2, 13.8, 15.6}, {13.5, 15.3, 17.3, 19.4}, {16.9, 19.0, 21.4, 24.1}},
			{{11.6, 12.8, 14.2, 15.7}, {14.2, 15.7, 17.4, 19.2}, {17.4, 19.2, 21.2, 23.3}, {21.2, 23.3, 25.6, 28.1}},
			{{15.6, 16.8, 18.2, 19.6}, {18.6, 20.1, 21.7, 23.4}, {22.2, 24.0, 25.8, 27.8}, {26.4, 28.4, 30.5, 32.8}},
		},
	},
}

var score2ChartFemale = map[engine.RiskRegion][2][6][4][4]float64{
	engine.RegionLow: {
		{
			{{1.0, 1.1, 1.3, 1.5}, {1.4, 1.5, 1.7, 2.0}, {1.8, 2.0, 2.3, 2.6}, {2.4, 2.7, 3.1, 3.5}},
			{{1.5, 1.6, 1.8, 2.0}, {1.9, 2.1, 2.4, 2.7}, {2.5, 2.8, 3.1, 3.5}, {3.3, 3.6, 4.1, 4.5}},
			{{2.1, 2.3, 2.6, 2.8}, {2.7, 3.0, 3.3, 3.6}, {3.5, 3.8, 4.2, 4.6}, {4.5, 4.9, 5.4, 5.9}},
			{{3.1, 3.3, 3.6, 3.9}, {3.9, 4.2, 4.5, 4.9}, {4.9, 5.2, 5.7, 6.1}, {6.1, 6.5, 7.1, 7.6}},
			{{4.5, 4.8, 5.1, 5.4}, {5.5, 5.8, 6.2, 6.6}, {6.7, 7.2, 7.6, 8.1}, {8.2, 8.7, 9.3, 9.9}},
			{{6.4, 6.7, 7.1, 7.4}, {7.8, 8.1, 8.5, 8.9}, {9.3, 9.7, 10.2, 10.6}, {11.1, 11.6, 12.2, 12.7}},
		},
		{
			{{2.3, 2.6, 2.9, 3.3}, {3.0, 3.4, 3.9, 4.4}, {4.0, 4.5, 5.1, 5.8}, {5.3, 6.0, 6.8, 7.6}},
			{{3.0, 3.4, 3.8, 4.2}, {4.0, 4.4, 4.9, 5.5}, {5.2, 5.7, 6.4, 7.1}, {6.7, 7.4, 8.3, 9.2}},
			{{4.1, 4.5, 4.9, 5.4}, {5.2, 5.7, 6.3, 6.9}, {6.6, 7.3, 8.0, 8.7}, {8.4, 9.2, 10.1, 11.0}},
			{{5.5, 5.9, 6.4, 6.9}, {6.8, 7.4, 7.9, 8.6}, {8.5, 9.2, 9.9, 10.7}, {10.6, 11.4, 12.3, 13.2}},
			{{7.3, 7.8, 8.2, 8.7}, {8.9, 9.5, 10.1, 10.7}, {10.9, 11.6, 12.3, 13.0}, {13.3, 14.1, 14.9, 15.8}},
			{{9.7, 10.2, 10.6, 11.1}, {11.7, 12.2, 12.7, 13.3}, {13.9, 14.5, 15.2, 15.8}, {16.6, 17.3, 18.1, 18.8}},
		},
	},
	engine.RegionModerate: {
		{
			{{1.0, 1.2, 1.3, 1.5}, {1.4, 1.6, 1.8, 2.1}, {1.9, 2.2, 2.5, 2.9}, {2.6, 3.0, 3.4, 3.9}},
			{{1.5, 1.7, 2.0, 2.2}, {2.1, 2.3, 2.6, 3.0}, {2.8, 3.1, 3.5, 3.9}, {3.7, 4.2, 4.7, 5.3}},
			{{2.3, 2.6, 2.8, 3.1}, {3.0, 3.4, 3.7, 4.1}, {4.0, 4.4, 4.9, 5.4}, {5.2, 5.7, 6.3, 7.0}},
			{{3.5, 3.8, 4.1, 4.5}, {4.5, 4.8, 5.3, 5.7}, {5.7, 6.2, 6.7, 7.3}, {7.3, 7.9, 8.6, 9.3}},
			{{5.2, 5.6, 6.0, 6.4}, {6.5, 7.0, 7.4, 7.9}, {8.1, 8.7, 9.3, 9.9}, {10.1, 10.8, 11.5, 12.3}},
			{{7.8, 8.2, 8.6, 9.0}, {9.5, 10.0, 10.4, 11.0}, {11.6, 12.1, 12.7, 13.3}, {14.0, 14.7, 15.4, 16.2}},
		},
		{
			{{2.5, 2.8, 3.2, 3.7}, {3.4, 3.9, 4.4, 5.1}, {4.6, 5.3, 6.0, 6.9}, {6.3, 7.2, 8.2, 9.3}},
			{{3.4, 3.8, 4.3, 4.9}, {4.6, 5.1, 5.8, 6.5}, {6.1, 6.8, 7.7, 8.6}, {8.1, 9.1, 10.2, 11.4}},
			{{4.7, 5.2, 5.8, 6.4}, {6.2, 6.8, 7.5, 8.3}, {8.0, 8.8, 9.7, 10.8}, {10.4, 11.4, 12.6, 13.9}},
			{{6.5, 7.1, 7.7, 8.3}, {8.3, 9.0, 9.7, 10.6}, {10.5, 11.4, 12.4, 13.4}, {13.3, 14.4, 15.6, 16.9}},
			{{8.9, 9.5, 10.1, 10.8}, {11.1, 11.8, 12.6, 13.4}, {13.7, 14.6, 15.6, 16.6}, {17.0, 18.1, 19.2, 20.4}},
			{{12.1, 12.7, 13.4, 14.0}, {14.7, 15.5, 16.2, 17.0}, {17.8, 18.7, 19.6, 20.5}, {21.5, 22.5, 23.5, 24.6}},
		},
	},
	engine.RegionHigh: {
		{
			{{0.9, 1.1, 1.3, 1.5}, {1.3, 1.6, 1.8, 2.2}, {1.9, 2.3, 2.7, 3.2}, {2.8, 3.3, 3.9, 4.6}},
			{{1.5, 1.7, 2.0, 2.3}, {2.1, 2.5, 2.8, 3.3}, {3.0, 3.5, 4.0, 4.6}, {4.3, 5.0, 5.7, 6.6}},
			{{2.4, 2.8, 3.1, 3.5}, {3.4, 3.8, 4.3, 4.9}, {4.7, 5.3, 6.0, 6.8}, {6.5, 7.3, 8.3, 9.3}},
			{{4.0, 4.4, 4.9, 5.4}, {5.4, 6.0, 6.6, 7.3}, {7.3, 8.0, 8.9, 9.8}, {9.7, 10.7, 11.8, 13.1}},
			{{6.5, 7.1, 7.7, 8.3}, {8.5, 9.2, 10.0, 10.8}, {11.1, 12.0, 13.0, 14.1}, {14.5, 15.6, 16.9, 18.2}},
			{{10.5, 11.2, 11.8, 12.5}, {13.4, 14.2, 15.0, 15.9}, {16.9, 17.9, 18.9, 20.0}, {21.2, 22.4, 23.7, 25.0}},
		},
		{
			{{2.6, 3.1, 3.7, 4.3}, {3.9, 4.5, 5.4, 6.3}, {5.6, 6.6, 7.8, 9.1}, {8.1, 9.5, 11.2, 13.1}},
			{{3.9, 4.5, 5.2, 6.0}, {5.6, 6.4, 7.4, 8.5}, {7.8, 9.0, 10.4, 11.9}, {11.0, 12.7, 14.5, 16.6}},
			{{5.8, 6.5, 7.4, 8.3}, {8.0, 9.0, 10.1, 11.4}, {10.9, 12.3, 13.8, 15.5}, {14.9, 16.7, 18.7, 20.9}},
			{{8.5, 9.4, 10.4, 11.4}, {11.4, 12.5, 13.8, 15.2}, {15.1, 16.6, 18.3, 20.1}, {19.9, 21.9, 24.0, 26.2}},
			{{12.4, 13.4, 14.5, 15.6}, {16.1, 17.3, 18.7, 20.1}, {20.7, 22.3, 23.9, 25.7}, {26.4, 28.4, 30.4, 32.6}},
			{{17.9, 18.9, 20.0, 21.2}, {22.5, 23.7, 25.0, 26.4}, {28.0, 29.5, 31.0, 32.7}, {34.5, 36.3, 38.1, 39.9}},
		},
	},
	engine.RegionVeryHigh: {
		{
			{{2.4, 2.8, 3.3, 3.8}, {3.4, 4.0, 4.6, 5.3}, {4.8, 5.5, 6.4, 7.4}, {6.6, 7.7, 8.9, 10.2}},
			{{3.8, 4.3, 4.9, 5.5}, {5.2, 5.9, 6.6, 7.5}, {7.0, 8.0, 9.0, 10.2}, {9.5, 10.8, 12.2, 13.8}},
			{{5.8, 6.5, 7.2, 8.1}, {7.8, 8.6, 9.6, 10.7}, {10.3, 11.4, 12.7, 14.1}, {13.6, 15.1, 16.7, 18.5}},
			{{9.0, 9.8, 10.7, 11.7}, {11.6, 12.7, 13.8, 15.0}, {15.0, 16.3, 17.7, 19.3}, {19.2, 20.8, 22.6, 24.5}},
			{{13.7, 14.6, 15.7, 16.7}, {17.2, 18.4, 19.6, 21.0}, {21.5, 22.9, 24.4, 26.0}, {26.7, 28.4, 30.2, 32.1}},
			{{20.5, 21.5, 22.6, 23.7}, {25.0, 26.2, 27.5, 28.8}, {30.3, 31.7, 33.1, 34.6}, {36.4, 38.0, 39.6, 41.3}},
		},
		{
			{{6.3, 7.2, 8.3, 9.6}, {8.7, 10.0, 11.5, 13.3}, {12.0, 13.8, 15.8, 18.1}, {16.5, 18.9, 21.5, 24.5}},
			{{8.8, 10.0, 11.3, 12.7}, {11.9, 13.4, 15.2, 17.1}, {16.0, 18.0, 20.2, 22.7}, {21.3, 23.9, 26.7, 29.8}},
			{{12.3, 13.7, 15.2, 16.8}, {16.2, 17.9, 19.8, 21.9}, {21.1, 23.3, 25.7, 28.2}, {27.3, 30.0, 32.9, 36.0}},
			{{17.1, 18.6, 20.2, 21.9}, {21.8, 23.7, 25.6, 27.8}, {27.6, 29.9, 32.2, 34.8}, {34.6, 37.2, 40.0, 42.9}},
			{{23.5, 25.0, 26.7, 28.4}, {29.0, 30.9, 32.8, 34.8}, {35.6, 37.7, 40.0, 42.3}, {43.1, 45.6, 48.1, 50.6}},
			{{31.7, 33.2, 34.7, 36.2}, {38.0, 39.7, 41.4, 43.1}, {45.1, 46.9, 48.8, 50.7}, {52.8, 54.8, 56.8, 58.8}},
		},
	},
}
