// Package seed заливает демонстрационные данные для локальной
// разработки: два пользователя, профиль провайдера, несколько заявок и
// предложений. Прогоняется через доменные сервисы, чтобы данные
// проходили ту же валидацию, что и реальные.
package seed

import (
	"context"
	"errors"
	"log"

	"github.com/Leganyst/labor-platform/internal/apperr"
	"github.com/Leganyst/labor-platform/internal/model"
	"github.com/Leganyst/labor-platform/internal/service"
)

func Demo(
	ctx context.Context,
	identity *service.IdentityService,
	providers *service.ProviderService,
	jobs *service.JobRequestService,
	quotes *service.QuoteService,
) error {
	customer, err := identity.Register(ctx, service.RegisterInput{
		Email:     "user@example.com",
		Password:  "password123",
		FirstName: "John",
		LastName:  "Doe",
		Phone:     "9876543210",
	})
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			// Демо-данные уже залиты.
			return nil
		}
		return err
	}

	supplier, err := identity.Register(ctx, service.RegisterInput{
		Email:     "provider@example.com",
		Password:  "password123",
		FirstName: "Jane",
		LastName:  "Smith",
		Phone:     "9876543211",
	})
	if err != nil {
		return err
	}

	provider, err := providers.Create(ctx, service.CreateProviderInput{
		UserID:        supplier.ID,
		CompanyName:   "Smith Industries",
		ContactPerson: "Jane Smith",
		Phone:         "9876543211",
		Email:         "provider@example.com",
		Address:       "Industrial Area, Sector 5, Mumbai",
		Specialization: []model.Specialization{
			model.SpecializationWelder,
			model.SpecializationFitter,
			model.SpecializationElectrician,
		},
		YearsInBusiness: 8,
		Description:     "Leading industrial labor provider with expertise in welding, fitting, and electrical work.",
	})
	if err != nil {
		return err
	}

	demoJobs := []service.CreateJobRequestInput{
		{
			Title:       "Need Welders for Factory Maintenance",
			Location:    "Mumbai, Maharashtra",
			Duration:    "3 months",
			Budget:      "₹25,000 per worker",
			Workers:     5,
			JobType:     string(model.JobTypeContract),
			Description: "Looking for experienced welders who can handle maintenance work in our manufacturing plant.",
			ContactInfo: "contact@factory.com",
			UserID:      customer.ID,
		},
		{
			Title:       "Skilled Fitters for Construction Project",
			Location:    "Delhi, NCR",
			Duration:    "6 months",
			Budget:      "₹20,000 per worker",
			Workers:     10,
			JobType:     string(model.JobTypeFullTime),
			Description: "Hiring skilled fitters for our ongoing construction project.",
			ContactInfo: "hr@construct.com",
			UserID:      customer.ID,
		},
		{
			Location: "Bangalore, Karnataka",
			Duration: "2 months",
			Budget:   "₹22,000 per worker",
			Categories: []model.JobCategory{
				{Category: model.SpecializationElectrician, Count: 6},
				{Category: model.SpecializationHelper, Count: 2},
			},
			JobType:     string(model.JobTypeContract),
			Description: "Electrical workers for setting up systems in our new factory.",
			ContactInfo: "electrical@factory.com",
			UserID:      supplier.ID,
		},
		{
			Title:       "Packers Needed for Warehouse",
			Location:    "Chennai, Tamil Nadu",
			Duration:    "1 month",
			Budget:      "₹15,000 per worker",
			Workers:     15,
			JobType:     string(model.JobTypePartTime),
			Description: "Workers to pack and prepare goods for shipping in our warehouse.",
			ContactInfo: "warehouse@shipping.com",
			UserID:      supplier.ID,
		},
	}

	created := make([]int64, 0, len(demoJobs))
	for _, input := range demoJobs {
		job, err := jobs.Create(ctx, input)
		if err != nil {
			return err
		}
		created = append(created, job.ID)
	}

	first, err := quotes.Submit(ctx, service.SubmitQuoteInput{
		JobRequestID: created[0],
		ProviderID:   provider.ID,
		Amount:       "₹22,000 per worker",
		Timeline:     "3 months",
		Comments:     "We can provide 5 experienced welders with necessary certifications.",
	})
	if err != nil {
		return err
	}

	second, err := quotes.Submit(ctx, service.SubmitQuoteInput{
		JobRequestID: created[1],
		ProviderID:   provider.ID,
		Amount:       "₹19,000 per worker",
		Timeline:     "6 months",
		Comments:     "We can supply 10 skilled fitters and start immediately.",
	})
	if err != nil {
		return err
	}
	if _, err := quotes.UpdateStatus(ctx, second.ID, model.QuoteStatusAccepted); err != nil {
		return err
	}

	log.Printf("seeded demo data: %d job requests, quotes %d and %d", len(created), first.ID, second.ID)
	return nil
}
