package services

import "consultancy_site_go/models"

// Lead score bands. Thresholds are inclusive lower bounds, checked top-down.
const (
	LeadLabelHot  = "Hot Lead"
	LeadLabelWarm = "Warm Lead"
	LeadLabelCool = "Cool Lead"
	LeadLabelCold = "Cold Lead"

	LeadColorHot  = "#ef4444"
	LeadColorWarm = "#f97316"
	LeadColorCool = "#3b82f6"
	LeadColorCold = "#6b7280"
)

// LeadBand is one scoring band
type LeadBand struct {
	MinScore int
	Label    string
	Color    string
}

// ScoringTables holds the per-dimension point tables. Codes missing from a
// table score zero.
type ScoringTables struct {
	Budget        map[string]int
	Timeline      map[string]int
	BusinessStage map[string]int
	EmployeeCount map[string]int
	WebsiteStatus map[string]int
	// Bands must be ordered by MinScore, highest first. The last band is the
	// catch-all and its MinScore is ignored.
	Bands []LeadBand
}

// DefaultScoringTables sum to a maximum of 100 points.
var DefaultScoringTables = &ScoringTables{
	Budget: map[string]int{
		models.BudgetUnder1M:  5,
		models.Budget1Mto5M:   15,
		models.Budget5Mto15M:  20,
		models.Budget15Mto50M: 25,
		models.Budget50MPlus:  30,
	},
	Timeline: map[string]int{
		models.TimelineASAP:     25,
		models.Timeline1Month:   20,
		models.Timeline3Months:  15,
		models.Timeline6Months:  10,
		models.TimelineFlexible: 5,
	},
	BusinessStage: map[string]int{
		models.BusinessStageIdea:        5,
		models.BusinessStageStartup:     15,
		models.BusinessStageGrowth:      20,
		models.BusinessStageEstablished: 18,
	},
	EmployeeCount: map[string]int{
		models.EmployeeCountSolo:    5,
		models.EmployeeCount2to10:   10,
		models.EmployeeCount11to50:  13,
		models.EmployeeCount51to200: 15,
		models.EmployeeCount200Plus: 15,
	},
	WebsiteStatus: map[string]int{
		models.WebsiteStatusNone:         10,
		models.WebsiteStatusBasic:        8,
		models.WebsiteStatusOutdated:     10,
		models.WebsiteStatusProfessional: 3,
	},
	Bands: []LeadBand{
		{MinScore: 80, Label: LeadLabelHot, Color: LeadColorHot},
		{MinScore: 60, Label: LeadLabelWarm, Color: LeadColorWarm},
		{MinScore: 40, Label: LeadLabelCool, Color: LeadColorCool},
		{MinScore: 0, Label: LeadLabelCold, Color: LeadColorCold},
	},
}

// ScoreBreakdown reports the points awarded per dimension
type ScoreBreakdown struct {
	Budget        int
	Timeline      int
	BusinessStage int
	EmployeeCount int
	WebsiteStatus int
}

// Total sums the dimensions
func (b ScoreBreakdown) Total() int {
	return b.Budget + b.Timeline + b.BusinessStage + b.EmployeeCount + b.WebsiteStatus
}

// Scorer computes lead scores from a fixed set of tables
type Scorer struct {
	tables *ScoringTables
}

// NewScorer creates a scorer. A nil tables argument uses DefaultScoringTables.
func NewScorer(tables *ScoringTables) *Scorer {
	if tables == nil {
		tables = DefaultScoringTables
	}
	return &Scorer{tables: tables}
}

// Breakdown returns the per-dimension points for lead
func (s *Scorer) Breakdown(lead models.LeadSubmission) ScoreBreakdown {
	return ScoreBreakdown{
		Budget:        s.tables.Budget[lead.Budget],
		Timeline:      s.tables.Timeline[lead.Timeline],
		BusinessStage: s.tables.BusinessStage[lead.BusinessStage],
		EmployeeCount: s.tables.EmployeeCount[lead.EmployeeCount],
		WebsiteStatus: s.tables.WebsiteStatus[lead.WebsiteStatus],
	}
}

// Score computes the numeric score and its band
func (s *Scorer) Score(lead models.LeadSubmission) models.LeadScore {
	score := s.Breakdown(lead).Total()
	band := s.band(score)
	return models.LeadScore{Score: score, Label: band.Label, Color: band.Color}
}

func (s *Scorer) band(score int) LeadBand {
	bands := s.tables.Bands
	for i, b := range bands {
		if i == len(bands)-1 || score >= b.MinScore {
			return b
		}
	}
	return LeadBand{Label: LeadLabelCold, Color: LeadColorCold}
}

// CalculateLeadScore scores lead with DefaultScoringTables
func CalculateLeadScore(lead models.LeadSubmission) models.LeadScore {
	return NewScorer(nil).Score(lead)
}
