package repository

import (
	"github.com/taskboard/taskboard-api/internal/models"
	"gorm.io/gorm"
)

// GormTeamRepository is a GORM implementation of TeamRepository
type GormTeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &GormTeamRepository{db: db}
}

// Create creates a new team
func (r *GormTeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// FindByID finds a team by ID
func (r *GormTeamRepository) FindByID(id uint64) (*models.Team, error) {
	var team models.Team
	if err := r.db.First(&team, id).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// ListActive lists all active teams
func (r *GormTeamRepository) ListActive() ([]models.Team, error) {
	var teams []models.Team
	if err := r.db.Where("is_active = ?", true).Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// ListActiveByManager lists active teams managed by a user
func (r *GormTeamRepository) ListActiveByManager(managerID uint64) ([]models.Team, error) {
	var teams []models.Team
	if err := r.db.Where("manager_id = ? AND is_active = ?", managerID, true).Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// ListByManager lists teams managed by a user regardless of active state
func (r *GormTeamRepository) ListByManager(managerID uint64) ([]models.Team, error) {
	var teams []models.Team
	if err := r.db.Where("manager_id = ?", managerID).Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// ListActiveByIDs lists active teams out of the given id set
func (r *GormTeamRepository) ListActiveByIDs(ids []uint64) ([]models.Team, error) {
	if len(ids) == 0 {
		return []models.Team{}, nil
	}
	var teams []models.Team
	if err := r.db.Where("id IN ? AND is_active = ?", ids, true).Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// AddMember inserts a membership row. The composite unique index on
// (team_id, user_id) makes concurrent duplicate adds lose with
// gorm.ErrDuplicatedKey instead of racing a separate existence check.
func (r *GormTeamRepository) AddMember(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

// RemoveMember deletes a membership row and reports how many rows went
func (r *GormTeamRepository) RemoveMember(teamID, userID uint64) (int64, error) {
	result := r.db.Where("team_id = ? AND user_id = ?", teamID, userID).
		Delete(&models.TeamMember{})
	return result.RowsAffected, result.Error
}

// ListMembers lists the memberships of a team
func (r *GormTeamRepository) ListMembers(teamID uint64) ([]models.TeamMember, error) {
	var members []models.TeamMember
	if err := r.db.Where("team_id = ?", teamID).Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// ListMembershipsByUser lists all memberships held by a user
func (r *GormTeamRepository) ListMembershipsByUser(userID uint64) ([]models.TeamMember, error) {
	var memberships []models.TeamMember
	if err := r.db.Where("user_id = ?", userID).Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}
