package domain

import (
	"time"
)

// Member is a gym member profile.
type Member struct {
	ID          string     `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	Email       string     `db:"email" json:"email"`
	TrainerID   *string    `db:"trainer_id" json:"trainer_id,omitempty"`
	TrainerName *string    `db:"trainer_name" json:"trainer_name,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	LastSeenAt  *time.Time `db:"last_seen_at" json:"last_seen_at,omitempty"`
}

// MemberSummary aggregates everything an admin wants to see about one member.
type MemberSummary struct {
	Member          Member     `json:"member"`
	TrainerName     string     `json:"trainer_name,omitempty"`
	CurrentWeightKg float64    `json:"current_weight_kg,omitempty"`
	DietTitle       string     `json:"diet_title,omitempty"`
	RoutineTitle    string     `json:"routine_title,omitempty"`
	CheckinsLast30d int        `json:"checkins_last_30d"`
	LastCheckinAt   *time.Time `json:"last_checkin_at,omitempty"`
}

// Trainer is a gym trainer with the number of members assigned to them.
type Trainer struct {
	ID          string `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Email       string `db:"email" json:"email"`
	MemberCount int    `db:"member_count" json:"member_count"`
}

// Post is a social feed entry subject to moderation.
type Post struct {
	ID         string    `db:"id" json:"id"`
	AuthorName string    `db:"author_name" json:"author_name"`
	Content    string    `db:"content" json:"content"`
	Hidden     bool      `db:"is_hidden" json:"is_hidden"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// Notice is an announcement sent to all members or one specific member.
type Notice struct {
	ID        string    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Message   string    `db:"message" json:"message"`
	Priority  string    `db:"priority" json:"priority"`
	MemberID  *string   `db:"member_id" json:"member_id,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// InvitationCode lets new members register pre-assigned to a trainer.
type InvitationCode struct {
	ID        string    `db:"id" json:"id"`
	Code      string    `db:"code" json:"code"`
	TrainerID string    `db:"trainer_id" json:"trainer_id"`
	MaxUses   int       `db:"max_uses" json:"max_uses"`
	Uses      int       `db:"uses" json:"uses"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// DashboardStats is the gym-wide overview for admins.
type DashboardStats struct {
	TotalMembers        int `db:"total_members" json:"total_members"`
	TotalTrainers       int `db:"total_trainers" json:"total_trainers"`
	NewMembersThisMonth int `db:"new_members_this_month" json:"new_members_this_month"`
	CheckinsToday       int `db:"checkins_today" json:"checkins_today"`
	VisiblePosts        int `db:"visible_posts" json:"visible_posts"`
}

// MemberPlanResult describes what applying a full plan changed for a member.
type MemberPlanResult struct {
	MemberID        string    `json:"member_id"`
	Macros          MacroPlan `json:"macros"`
	DietAssigned    bool      `json:"diet_assigned"`
	RoutineAssigned bool      `json:"routine_assigned"`
}

// DietPlan is a rendered nutrition program for one member.
type DietPlan struct {
	ID        string    `json:"id,omitempty"`
	MemberID  string    `json:"member_id"`
	Macros    MacroPlan `json:"macros"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}
