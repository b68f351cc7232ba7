package repositories

import (
	"context"

	"github.com/skillcredit/backend/internal/app/models"
	"github.com/skillcredit/backend/internal/pkg/apperrors"
)

// IJobRepository defines the interface for job posting lookups
type IJobRepository interface {
	List(ctx context.Context) ([]models.JobPosting, error)
	GetByID(ctx context.Context, id string) (*models.JobPosting, error)
}

// JobRepository serves the job postings catalog. Postings are local fixture
// data; there is no upstream feed for them, so they live in code rather
// than in a table.
type JobRepository struct {
	postings []models.JobPosting
}

// NewJobRepository creates a new JobRepository with the built-in catalog
func NewJobRepository() *JobRepository {
	return &JobRepository{postings: jobCatalog}
}

// List returns all postings
func (r *JobRepository) List(ctx context.Context) ([]models.JobPosting, error) {
	out := make([]models.JobPosting, len(r.postings))
	copy(out, r.postings)
	return out, nil
}

// GetByID returns one posting or ErrJobNotFound
func (r *JobRepository) GetByID(ctx context.Context, id string) (*models.JobPosting, error) {
	for i := range r.postings {
		if r.postings[i].ID == id {
			job := r.postings[i]
			return &job, nil
		}
	}
	return nil, apperrors.ErrJobNotFound
}

var jobCatalog = []models.JobPosting{
	{
		ID:            "1",
		Title:         "Software Engineering Intern",
		Company:       "Tech Innovations Inc.",
		Location:      "Bangalore, India",
		Type:          models.JobTypeInternship,
		Description:   "Looking for a talented software engineering intern to join our dynamic team. Work on real-world projects using cutting-edge technologies.",
		RequiredScore: 150,
		PostedDate:    "2023-09-15",
		Skills:        []string{"React", "TypeScript", "Node.js"},
	},
	{
		ID:            "2",
		Title:         "Data Science Intern",
		Company:       "Analytics Hub",
		Location:      "Remote",
		Type:          models.JobTypeInternship,
		Description:   "Join our data science team to analyze large datasets and build machine learning models for real-world business problems.",
		RequiredScore: 170,
		PostedDate:    "2023-09-10",
		Skills:        []string{"Python", "Machine Learning", "SQL"},
	},
	{
		ID:            "3",
		Title:         "Frontend Developer",
		Company:       "Digital Solutions",
		Location:      "Mumbai, India",
		Type:          models.JobTypeFullTime,
		Description:   "Create responsive and interactive web applications as part of our growing development team.",
		RequiredScore: 200,
		PostedDate:    "2023-09-05",
		Skills:        []string{"JavaScript", "CSS", "HTML", "React"},
	},
	{
		ID:            "4",
		Title:         "Backend Engineer",
		Company:       "Cloud Systems",
		Location:      "Delhi, India",
		Type:          models.JobTypeFullTime,
		Description:   "Build scalable and robust backend systems using modern technologies and best practices.",
		RequiredScore: 220,
		PostedDate:    "2023-08-28",
		Skills:        []string{"Java", "Spring Boot", "AWS"},
	},
	{
		ID:            "5",
		Title:         "UI/UX Design Intern",
		Company:       "Creative Works",
		Location:      "Hyderabad, India",
		Type:          models.JobTypeInternship,
		Description:   "Work with our design team to create beautiful and intuitive user interfaces for web and mobile applications.",
		RequiredScore: 140,
		PostedDate:    "2023-09-20",
		Skills:        []string{"Figma", "Adobe XD", "UI/UX"},
	},
	{
		ID:            "6",
		Title:         "Mobile App Developer",
		Company:       "Mobile Tech",
		Location:      "Chennai, India",
		Type:          models.JobTypePartTime,
		Description:   "Develop native mobile applications for iOS and Android platforms.",
		RequiredScore: 180,
		PostedDate:    "2023-09-12",
		Skills:        []string{"React Native", "iOS", "Android"},
	},
	{
		ID:            "7",
		Title:         "DevOps Engineer",
		Company:       "Infra Solutions",
		Location:      "Pune, India",
		Type:          models.JobTypeFullTime,
		Description:   "Manage our infrastructure and deployment pipeline to ensure smooth operation of our services.",
		RequiredScore: 250,
		PostedDate:    "2023-08-20",
		Skills:        []string{"Docker", "Kubernetes", "CI/CD"},
	},
	{
		ID:            "8",
		Title:         "Product Management Intern",
		Company:       "Product Labs",
		Location:      "Bangalore, India",
		Type:          models.JobTypeInternship,
		Description:   "Learn product management by working with our team on real product development lifecycle.",
		RequiredScore: 160,
		PostedDate:    "2023-09-08",
		Skills:        []string{"Product Strategy", "Agile", "Market Research"},
	},
}
