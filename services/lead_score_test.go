package services

import (
	"testing"

	"consultancy_site_go/models"

	"github.com/stretchr/testify/assert"
)

func TestCalculateLeadScore(t *testing.T) {
	t.Run("Hot lead", func(t *testing.T) {
		score := CalculateLeadScore(hotLead())
		assert.Equal(t, 98, score.Score)
		assert.Equal(t, LeadLabelHot, score.Label)
		assert.Equal(t, LeadColorHot, score.Color)
	})

	t.Run("Cold lead", func(t *testing.T) {
		score := CalculateLeadScore(coldLead())
		assert.Equal(t, 23, score.Score)
		assert.Equal(t, LeadLabelCold, score.Label)
		assert.Equal(t, LeadColorCold, score.Color)
	})

	t.Run("Unknown codes score zero", func(t *testing.T) {
		lead := models.LeadSubmission{Budget: "lots", Timeline: "someday"}
		score := CalculateLeadScore(lead)
		assert.Equal(t, 0, score.Score)
		assert.Equal(t, LeadLabelCold, score.Label)
	})

	t.Run("Deterministic", func(t *testing.T) {
		lead := hotLead()
		assert.Equal(t, CalculateLeadScore(lead), CalculateLeadScore(lead))
	})
}

func TestScorerBreakdown(t *testing.T) {
	b := NewScorer(nil).Breakdown(hotLead())
	assert.Equal(t, ScoreBreakdown{
		Budget:        30,
		Timeline:      25,
		BusinessStage: 18,
		EmployeeCount: 15,
		WebsiteStatus: 10,
	}, b)
	assert.Equal(t, 98, b.Total())
}

func TestScorerBands(t *testing.T) {
	s := NewScorer(nil)
	tests := []struct {
		score int
		label string
		color string
	}{
		{100, LeadLabelHot, LeadColorHot},
		{80, LeadLabelHot, LeadColorHot},
		{79, LeadLabelWarm, LeadColorWarm},
		{60, LeadLabelWarm, LeadColorWarm},
		{59, LeadLabelCool, LeadColorCool},
		{40, LeadLabelCool, LeadColorCool},
		{39, LeadLabelCold, LeadColorCold},
		{0, LeadLabelCold, LeadColorCold},
	}
	for _, tt := range tests {
		band := s.band(tt.score)
		assert.Equal(t, tt.label, band.Label, "score %d", tt.score)
		assert.Equal(t, tt.color, band.Color, "score %d", tt.score)
	}
}

func TestScoreBounds(t *testing.T) {
	s := NewScorer(nil)
	lead := models.LeadSubmission{}
	for _, budget := range models.Budgets {
		for _, timeline := range models.Timelines {
			for _, stage := range models.BusinessStages {
				for _, employees := range models.EmployeeCounts {
					for _, website := range models.WebsiteStatuses {
						lead.Budget, lead.Timeline, lead.BusinessStage = budget, timeline, stage
						lead.EmployeeCount, lead.WebsiteStatus = employees, website
						score := s.Score(lead).Score
						if score < 0 || score > 100 {
							t.Fatalf("score %d out of range for %+v", score, lead)
						}
					}
				}
			}
		}
	}
}

func TestScorerCustomTables(t *testing.T) {
	tables := &ScoringTables{
		Budget: map[string]int{models.Budget50MPlus: 50},
		Bands: []LeadBand{
			{MinScore: 50, Label: "Big", Color: "#000"},
			{MinScore: 0, Label: "Small", Color: "#fff"},
		},
	}
	s := NewScorer(tables)

	assert.Equal(t, models.LeadScore{Score: 50, Label: "Big", Color: "#000"}, s.Score(hotLead()))
	assert.Equal(t, models.LeadScore{Score: 0, Label: "Small", Color: "#fff"}, s.Score(coldLead()))
}
