package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"matchday-backend/internal/config"
	"matchday-backend/internal/database"
	"matchday-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the seed YAML files

type UserData struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

type GroupData struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Privacy     string   `yaml:"privacy"`
	Owner       string   `yaml:"owner"`
	Admins      []string `yaml:"admins,omitempty"`
	Members     []string `yaml:"members,omitempty"`
}

type MatchData struct {
	GroupName         string `yaml:"group_name"`
	DateTime          string `yaml:"date_time"`
	Location          string `yaml:"location"`
	MaxPlayersPerTeam int    `yaml:"max_players_per_team"`
	PlannedTeams      int    `yaml:"planned_teams"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type GroupsFile struct {
	Groups []GroupData `yaml:"groups"`
}

type MatchesFile struct {
	Matches []MatchData `yaml:"matches"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry waits for a dockerized Postgres to come up before seeding.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	groups, err := loadGroups(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load groups: %w", err)
	}
	matches, err := loadMatches(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load matches: %w", err)
	}

	// Users first, everything else hangs off them
	userMap := make(map[string]*models.User)
	usersCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		userMap[userData.Email] = user
		if created {
			usersCreated++
		}
	}
	log.Printf("Users: %d created, %d total", usersCreated, len(users))

	groupMap := make(map[string]*models.Group)
	groupsCreated := 0
	for _, groupData := range groups {
		group, created, err := createGroup(db, groupData, userMap)
		if err != nil {
			return fmt.Errorf("failed to create group %s: %w", groupData.Name, err)
		}
		groupMap[groupData.Name] = group
		if created {
			groupsCreated++
		}
	}
	log.Printf("Groups: %d created, %d total", groupsCreated, len(groups))

	matchesCreated := 0
	for _, matchData := range matches {
		created, err := createMatch(db, matchData, groupMap)
		if err != nil {
			return fmt.Errorf("failed to create match in %s: %w", matchData.GroupName, err)
		}
		if created {
			matchesCreated++
		}
	}
	log.Printf("Matches: %d created, %d total", matchesCreated, len(matches))

	return nil
}

func loadUsers(dataDir string) ([]UserData, error) {
	var file UsersFile
	if err := readYAML(filepath.Join(dataDir, "users.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Users, nil
}

func loadGroups(dataDir string) ([]GroupData, error) {
	var file GroupsFile
	if err := readYAML(filepath.Join(dataDir, "groups.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Groups, nil
}

func loadMatches(dataDir string) ([]MatchData, error) {
	var file MatchesFile
	if err := readYAML(filepath.Join(dataDir, "matches.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Matches, nil
}

// readYAML reads a seed file; a missing file is treated as an empty list so
// partial data directories work.
func readYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, out)
}

func createUser(db *gorm.DB, data UserData) (*models.User, bool, error) {
	email := strings.ToLower(strings.TrimSpace(data.Email))

	var existing models.User
	err := db.First(&existing, "email = ?", email).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	user := &models.User{Name: data.Name, Email: email}
	if err := db.Create(user).Error; err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func createGroup(db *gorm.DB, data GroupData, userMap map[string]*models.User) (*models.Group, bool, error) {
	var existing models.Group
	err := db.First(&existing, "name = ?", data.Name).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	privacy := models.GroupPrivacy(data.Privacy)
	if !privacy.IsValid() {
		privacy = models.GroupPrivacyPrivate
	}
	group := &models.Group{
		Name:        data.Name,
		Description: data.Description,
		Privacy:     privacy,
	}
	if err := db.Create(group).Error; err != nil {
		return nil, false, err
	}

	// Owner is the earliest admin grant, so seed them first
	if data.Owner != "" {
		if err := seedMember(db, group, userMap, data.Owner, true); err != nil {
			return nil, false, err
		}
	}
	for _, email := range data.Admins {
		if err := seedMember(db, group, userMap, email, true); err != nil {
			return nil, false, err
		}
	}
	for _, email := range data.Members {
		if err := seedMember(db, group, userMap, email, false); err != nil {
			return nil, false, err
		}
	}
	return group, true, nil
}

func seedMember(db *gorm.DB, group *models.Group, userMap map[string]*models.User, email string, admin bool) error {
	user, ok := userMap[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return fmt.Errorf("unknown user %s", email)
	}

	member := &models.GroupMember{GroupID: group.ID, UserID: user.ID}
	if err := db.Create(member).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}

	role := models.PlayerRolePlayer
	if admin {
		role = models.PlayerRoleAdmin
		grant := &models.GroupAdmin{GroupID: group.ID, UserID: user.ID}
		if err := db.Create(grant).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}

	player := &models.TeamPlayer{
		UserID:            user.ID,
		GroupID:           group.ID,
		Role:              role,
		Rating:            models.DefaultRating,
		PreferredPosition: models.DefaultPosition,
	}
	if err := db.Create(player).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}
	return nil
}

func createMatch(db *gorm.DB, data MatchData, groupMap map[string]*models.Group) (bool, error) {
	group, ok := groupMap[data.GroupName]
	if !ok {
		return false, fmt.Errorf("unknown group %s", data.GroupName)
	}

	dateTime, err := time.Parse(time.RFC3339, data.DateTime)
	if err != nil {
		return false, fmt.Errorf("invalid date_time %q: %w", data.DateTime, err)
	}

	var existing models.Match
	err = db.First(&existing, "group_id = ? AND date_time = ?", group.ID, dateTime).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	maxPerTeam := data.MaxPlayersPerTeam
	if maxPerTeam <= 0 {
		maxPerTeam = 5
	}
	plannedTeams := data.PlannedTeams
	if plannedTeams < 2 {
		plannedTeams = 2
	}
	match := &models.Match{
		GroupID:           group.ID,
		DateTime:          dateTime,
		Location:          data.Location,
		MaxPlayersPerTeam: maxPerTeam,
		PlannedTeams:      plannedTeams,
	}
	if err := db.Create(match).Error; err != nil {
		return false, err
	}
	return true, nil
}
