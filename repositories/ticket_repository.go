package repositories

import (
	"github.com/JWDT/bug-tracker/models"
	"gorm.io/gorm"
)

// TicketFilter narrows assigned-ticket listings. Nil fields match
// everything.
type TicketFilter struct {
	Status   *models.TicketStatus
	Priority *models.TicketPriority
	Type     *models.TicketType
}

type TicketRepo interface {
	CreateTicket(ticket *models.Ticket) error
	GetTicketByID(id uint) (*models.Ticket, error)
	// UpdateTicketFields applies the given column updates and returns the
	// fresh row in one transaction. Returns gorm.ErrRecordNotFound when no
	// ticket has the given id.
	UpdateTicketFields(id uint, fields map[string]interface{}) (*models.Ticket, error)
	ListTicketsByAssignee(developerID uint, filter TicketFilter) ([]models.Ticket, error)
}

type DBTicketRepo struct {
	db *gorm.DB
}

func NewTicketRepo(db *gorm.DB) *DBTicketRepo {
	return &DBTicketRepo{db: db}
}

func (r *DBTicketRepo) CreateTicket(ticket *models.Ticket) error {
	return r.db.Create(ticket).Error
}

func (r *DBTicketRepo) GetTicketByID(id uint) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.Preload("AssignedDeveloper").Preload("Project").First(&ticket, id).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *DBTicketRepo) UpdateTicketFields(id uint, fields map[string]interface{}) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Ticket{}).Where("id = ?", id).Updates(fields)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Preload("AssignedDeveloper").Preload("Project").First(&ticket, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *DBTicketRepo) ListTicketsByAssignee(developerID uint, filter TicketFilter) ([]models.Ticket, error) {
	q := r.db.Where("assigned_developer_id = ?", developerID)
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		q = q.Where("priority = ?", *filter.Priority)
	}
	if filter.Type != nil {
		q = q.Where("type = ?", *filter.Type)
	}

	var tickets []models.Ticket
	err := q.Preload("Project").Order("created_at desc").Find(&tickets).Error
	return tickets, err
}
