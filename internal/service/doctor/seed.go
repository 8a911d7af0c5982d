package doctor

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/shewell/maternity-api/internal/model"
	"github.com/shewell/maternity-api/internal/repository"
)

// defaultDirectory is the starter doctor listing for fresh deployments.
// Seeded accounts carry no usable password hash, so they cannot log in until
// claimed through an administrative reset.
var defaultDirectory = []model.Doctor{
	{
		Name:            "Dr. Sarah Johnson",
		Email:           "sarah.johnson@example.com",
		Phone:           "+1234567890",
		Specialization:  "Obstetrics",
		Location:        "New York, NY",
		Hospital:        "NYC Women's Health Center",
		Insurance:       []string{"Aetna", "Blue Cross Blue Shield", "Cigna"},
		Rating:          4.8,
		YearsExperience: 15,
	},
	{
		Name:            "Dr. Maria Rodriguez",
		Email:           "maria.rodriguez@example.com",
		Phone:           "+1234567891",
		Specialization:  "Maternal-Fetal Medicine",
		Location:        "New York, NY",
		Hospital:        "Mount Sinai Hospital",
		Insurance:       []string{"Medicare", "Blue Cross Blue Shield", "UnitedHealthcare"},
		Rating:          4.9,
		YearsExperience: 20,
	},
	{
		Name:            "Dr. Emily Chen",
		Email:           "emily.chen@example.com",
		Phone:           "+1234567892",
		Specialization:  "High-Risk Pregnancy",
		Location:        "Boston, MA",
		Hospital:        "Boston Medical Center",
		Insurance:       []string{"Cigna", "UnitedHealthcare", "Aetna"},
		Rating:          4.7,
		YearsExperience: 12,
	},
	{
		Name:            "Dr. Jessica Wilson",
		Email:           "jessica.wilson@example.com",
		Phone:           "+1234567893",
		Specialization:  "Prenatal Care",
		Location:        "Boston, MA",
		Hospital:        "Brigham and Women's Hospital",
		Insurance:       []string{"Blue Cross Blue Shield", "Medicaid", "Humana"},
		Rating:          4.6,
		YearsExperience: 8,
	},
	{
		Name:            "Dr. Lisa Thompson",
		Email:           "lisa.thompson@example.com",
		Phone:           "+1234567894",
		Specialization:  "Natural Birth",
		Location:        "Chicago, IL",
		Hospital:        "Chicago Women's Hospital",
		Insurance:       []string{"Aetna", "Kaiser Permanente", "Medicare"},
		Rating:          4.5,
		YearsExperience: 10,
	},
}

// Seed inserts the default directory into an empty doctor table.
func Seed(ctx context.Context, repo repository.DoctorRepository) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count doctors: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, d := range defaultDirectory {
		doctor := d
		doctor.ID = uuid.New()
		doctor.PasswordHash = "!"
		if err := repo.Create(ctx, &doctor); err != nil {
			return fmt.Errorf("failed to seed doctor %s: %w", doctor.Name, err)
		}
	}
	return nil
}
