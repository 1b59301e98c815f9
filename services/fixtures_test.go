package services

import "consultancy_site_go/models"

// hotLead scores 30+25+18+15+10 = 98
func hotLead() models.LeadSubmission {
	return models.LeadSubmission{
		FullName:         "Jane Nakato",
		Email:            "jane@example.com",
		Phone:            "0772123456",
		PreferredContact: models.ContactMethodCall,
		BusinessName:     "Acme Logistics",
		Industry:         "transport",
		BusinessStage:    models.BusinessStageEstablished,
		EmployeeCount:    models.EmployeeCount200Plus,
		WebsiteStatus:    models.WebsiteStatusNone,
		PrimaryNeed:      models.PrimaryNeedSaaSPlatform,
		CurrentSystems:   "Spreadsheets",
		Budget:           models.Budget50MPlus,
		Timeline:         models.TimelineASAP,
		Goals:            "Track fleet deliveries in real time",
		HowFound:         models.HowFoundReferral,
	}
}

// coldLead scores 5+5+5+5+3 = 23
func coldLead() models.LeadSubmission {
	lead := hotLead()
	lead.Budget = models.BudgetUnder1M
	lead.Timeline = models.TimelineFlexible
	lead.BusinessStage = models.BusinessStageIdea
	lead.EmployeeCount = models.EmployeeCountSolo
	lead.WebsiteStatus = models.WebsiteStatusProfessional
	return lead
}

func validContact() models.ContactSubmission {
	return models.ContactSubmission{
		Name:    "John Okello",
		Email:   "john@example.com",
		Message: "I would like a quote for a website.",
	}
}
