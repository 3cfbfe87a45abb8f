package query

import (
	"context"
	"io"

	"github.com/hrsuite/cvadmin/internal/api"
	"github.com/hrsuite/cvadmin/internal/models"
)

// The backend interfaces mirror the entity services one to one. They
// exist so the query layer can be tested against in-memory fakes.

type StepAPI interface {
	List(ctx context.Context, p api.ListParams) (*models.Page[models.Step], error)
	ListAll(ctx context.Context, t models.ContextType) ([]models.Step, error)
	Get(ctx context.Context, id int) (*models.Step, error)
	Create(ctx context.Context, in api.StepInput) error
	Update(ctx context.Context, id int, in api.StepInput) error
	ChangeStatus(ctx context.Context, id int, active bool) error
	Delete(ctx context.Context, id int) error
	Reorder(ctx context.Context, queue []models.StepOrderItem) error
}

type SectionAPI interface {
	List(ctx context.Context, p api.ListParams) (*models.Page[models.Section], error)
	ListAll(ctx context.Context, stepID int) ([]models.Section, error)
	Get(ctx context.Context, id int) (*models.Section, error)
	Create(ctx context.Context, in api.SectionInput) error
	Update(ctx context.Context, id int, in api.SectionInput) error
	ChangeStatus(ctx context.Context, id int, active bool) error
	Delete(ctx context.Context, id int) error
	Reorder(ctx context.Context, stepID int, ids []int) error
}

type AttributeAPI interface {
	List(ctx context.Context, p api.ListParams) (*models.Page[models.Attribute], error)
	ListAll(ctx context.Context, stepID int) ([]models.Attribute, error)
	Get(ctx context.Context, id int) (*models.Attribute, error)
	Create(ctx context.Context, in api.AttributeInput) error
	Update(ctx context.Context, id int, in api.AttributeInput) error
	ChangeStatus(ctx context.Context, id int, active bool) error
	Delete(ctx context.Context, id int) error
}

type ValueAPI interface {
	ListByAttribute(ctx context.Context, attributeID int) ([]models.AttributeValue, error)
	Create(ctx context.Context, in api.ValueInput) error
	Delete(ctx context.Context, valueID int) error
}

type ResumeAPI interface {
	List(ctx context.Context, p api.ListParams) (*models.Page[models.ResumeItem], error)
	Get(ctx context.Context, id, stepID int) (*models.ResumeItem, error)
	Delete(ctx context.Context, id int) error
	UploadDocument(ctx context.Context, id int, filename string, r io.Reader) error
}

type VacancyAPI interface {
	List(ctx context.Context, p api.ListParams) (*models.Page[models.VacancyItem], error)
	Get(ctx context.Context, id int) (*models.VacancyItem, error)
	ChangeStatus(ctx context.Context, id int, active bool) error
	Delete(ctx context.Context, id int) error
}

type UserAPI interface {
	List(ctx context.Context, p api.ListParams) (*models.Page[models.User], error)
	Get(ctx context.Context, id int) (*models.User, error)
	Create(ctx context.Context, in api.UserInput) error
	Update(ctx context.Context, id int, in api.UserInput) error
	ChangeStatus(ctx context.Context, id int, active bool) error
	Delete(ctx context.Context, id int) error
}

// Backend bundles the entity services the query layer binds to.
type Backend struct {
	Steps      StepAPI
	Sections   SectionAPI
	Attributes AttributeAPI
	Values     ValueAPI
	Resumes    ResumeAPI
	Vacancies  VacancyAPI
	Users      UserAPI
}

// NewBackend wires a Backend from the concrete API client.
func NewBackend(c *api.Client) Backend {
	return Backend{
		Steps:      c.Steps,
		Sections:   c.Sections,
		Attributes: c.Attributes,
		Values:     c.Values,
		Resumes:    c.Resumes,
		Vacancies:  c.Vacancies,
		Users:      c.Users,
	}
}

// Compile-time checks that the concrete services satisfy the interfaces.
var (
	_ StepAPI      = (*api.StepService)(nil)
	_ SectionAPI   = (*api.SectionService)(nil)
	_ AttributeAPI = (*api.AttributeService)(nil)
	_ ValueAPI     = (*api.ValueService)(nil)
	_ ResumeAPI    = (*api.ResumeService)(nil)
	_ VacancyAPI   = (*api.VacancyService)(nil)
	_ UserAPI      = (*api.UserService)(nil)
)
