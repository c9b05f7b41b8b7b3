package service

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"matchday-backend/internal/database/models"
	apperrors "matchday-backend/internal/errors"
	"matchday-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// csvHeader is the column order shared by export and import
var csvHeader = []string{"name", "email", "player_type", "joined_at", "rating", "preferred_position", "is_key_player", "role"}

// TransferService handles bulk export and import of group rosters
type TransferService struct {
	groupRepo      repository.GroupRepositoryInterface
	membershipRepo repository.MembershipRepositoryInterface
	playerRepo     repository.PlayerRepositoryInterface
	userRepo       repository.UserRepositoryInterface
	batchSize      int
	batchPause     time.Duration
}

// NewTransferService creates a new transfer service
func NewTransferService(
	groupRepo repository.GroupRepositoryInterface,
	membershipRepo repository.MembershipRepositoryInterface,
	playerRepo repository.PlayerRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	batchSize int,
	batchPause time.Duration,
) *TransferService {
	return &TransferService{
		groupRepo:      groupRepo,
		membershipRepo: membershipRepo,
		playerRepo:     playerRepo,
		userRepo:       userRepo,
		batchSize:      batchSize,
		batchPause:     batchPause,
	}
}

// ExportedPlayer is one player row in an export
type ExportedPlayer struct {
	Name              string            `json:"name"`
	Email             string            `json:"email"`
	PlayerType        string            `json:"player_type"`
	JoinedAt          time.Time         `json:"joined_at"`
	Rating            int               `json:"rating"`
	PreferredPosition models.Position   `json:"preferred_position"`
	IsKeyPlayer       bool              `json:"is_key_player"`
	Role              models.PlayerRole `json:"role"`
}

// ExportResponse is the JSON export envelope
type ExportResponse struct {
	Group struct {
		ID         uuid.UUID `json:"id"`
		Name       string    `json:"name"`
		ExportedAt time.Time `json:"exported_at"`
	} `json:"group"`
	Players []ExportedPlayer `json:"players"`
}

// ImportRecord is one inbound player row. Unknown or missing optional fields
// fall back to profile defaults.
type ImportRecord struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Rating            *int   `json:"rating"`
	PreferredPosition string `json:"preferred_position"`
	IsKeyPlayer       bool   `json:"is_key_player"`
	Role              string `json:"role"`
}

// ImportError pins a failure to its source record
type ImportError struct {
	Index  int    `json:"index"`
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

// ImportSummary reports the outcome of a bulk import
type ImportSummary struct {
	Imported int           `json:"imported"`
	Failed   int           `json:"failed"`
	Errors   []ImportError `json:"errors"`
}

// Export collects the group's players for download. Admin only.
func (s *TransferService) Export(actorID, groupID uuid.UUID) (*ExportResponse, error) {
	group, err := s.groupRepo.GetByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	if err := s.requireAdmin(groupID, actorID); err != nil {
		return nil, err
	}

	players, err := s.playerRepo.ListByGroup(groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	resp := &ExportResponse{Players: make([]ExportedPlayer, 0, len(players))}
	resp.Group.ID = group.ID
	resp.Group.Name = group.Name
	resp.Group.ExportedAt = time.Now().UTC()
	for i := range players {
		p := &players[i]
		if p.User == nil {
			continue
		}
		playerType := "member"
		if p.User.IsGuest() {
			playerType = "guest"
		}
		resp.Players = append(resp.Players, ExportedPlayer{
			Name:              p.User.Name,
			Email:             p.User.Email,
			PlayerType:        playerType,
			JoinedAt:          p.User.JoinedAt,
			Rating:            p.Rating,
			PreferredPosition: p.PreferredPosition,
			IsKeyPlayer:       p.IsKeyPlayer,
			Role:              p.Role,
		})
	}
	return resp, nil
}

// ExportCSV renders the export with the shared column order
func (s *TransferService) ExportCSV(actorID, groupID uuid.UUID) ([]byte, error) {
	resp, err := s.Export(actorID, groupID)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}
	for _, p := range resp.Players {
		record := []string{
			p.Name,
			p.Email,
			p.PlayerType,
			p.JoinedAt.Format(time.RFC3339),
			strconv.Itoa(p.Rating),
			string(p.PreferredPosition),
			strconv.FormatBool(p.IsKeyPlayer),
			string(p.Role),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}
	return buf.Bytes(), nil
}

// Import admits a batch of players into the group. Admin only. Records are
// processed in batches with a pause between them so a large import does not
// monopolize the database. A bad record fails alone; the rest proceed.
func (s *TransferService) Import(actorID, groupID uuid.UUID, records []ImportRecord) (*ImportSummary, error) {
	if _, err := s.groupRepo.GetByID(groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	if err := s.requireAdmin(groupID, actorID); err != nil {
		return nil, err
	}

	summary := &ImportSummary{Errors: []ImportError{}}
	for start := 0; start < len(records); start += s.batchSize {
		end := start + s.batchSize
		if end > len(records) {
			end = len(records)
		}
		for i := start; i < end; i++ {
			if err := s.importOne(groupID, &records[i]); err != nil {
				summary.Failed++
				summary.Errors = append(summary.Errors, ImportError{
					Index:  i,
					Email:  records[i].Email,
					Reason: err.Error(),
				})
				continue
			}
			summary.Imported++
		}
		if end < len(records) && s.batchPause > 0 {
			time.Sleep(s.batchPause)
		}
	}
	return summary, nil
}

// ParseImport accepts a raw JSON array, a {players:[…]} envelope, or CSV
// with the shared header
func ParseImport(data []byte, contentType string) ([]ImportRecord, error) {
	if strings.Contains(contentType, "csv") {
		return parseImportCSV(data)
	}

	var records []ImportRecord
	if err := json.Unmarshal(data, &records); err == nil {
		return records, nil
	}
	var envelope struct {
		Players []ImportRecord `json:"players"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, &apperrors.ValidationError{Field: "body", Message: "expected a JSON array, a players envelope, or CSV"}
	}
	return envelope.Players, nil
}

func parseImportCSV(data []byte) ([]ImportRecord, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, &apperrors.ValidationError{Field: "body", Message: "malformed CSV"}
	}
	if len(rows) == 0 {
		return nil, &apperrors.ValidationError{Field: "body", Message: "empty CSV"}
	}

	col := map[string]int{}
	for i, name := range rows[0] {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := col["name"]; !ok {
		return nil, &apperrors.ValidationError{Field: "body", Message: "CSV is missing a name column"}
	}
	if _, ok := col["email"]; !ok {
		return nil, &apperrors.ValidationError{Field: "body", Message: "CSV is missing an email column"}
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	records := make([]ImportRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := ImportRecord{
			Name:              field(row, "name"),
			Email:             field(row, "email"),
			PreferredPosition: field(row, "preferred_position"),
			Role:              field(row, "role"),
		}
		if v := field(row, "rating"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				rec.Rating = &n
			}
		}
		if v := field(row, "is_key_player"); v != "" {
			rec.IsKeyPlayer, _ = strconv.ParseBool(v)
		}
		records = append(records, rec)
	}
	return records, nil
}

// importOne upserts user, membership and profile for a single record
func (s *TransferService) importOne(groupID uuid.UUID, rec *ImportRecord) error {
	name := strings.TrimSpace(rec.Name)
	email := strings.ToLower(strings.TrimSpace(rec.Email))
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("valid email is required")
	}

	rating := models.DefaultRating
	if rec.Rating != nil {
		rating = clampRating(*rec.Rating)
	}
	position := models.Position(strings.ToUpper(strings.TrimSpace(rec.PreferredPosition)))
	if !position.IsValid() {
		position = models.DefaultPosition
	}
	role := models.PlayerRole(strings.ToLower(strings.TrimSpace(rec.Role)))
	if !role.IsValid() {
		role = models.PlayerRolePlayer
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up user: %w", err)
		}
		user = &models.User{Name: name, Email: email}
		if err := s.userRepo.Create(user); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
	}

	member := &models.GroupMember{GroupID: groupID, UserID: user.ID}
	if err := s.membershipRepo.AddMember(member); err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("failed to add member: %w", err)
	}

	player := &models.TeamPlayer{
		UserID:            user.ID,
		GroupID:           groupID,
		Role:              role,
		Rating:            rating,
		IsKeyPlayer:       rec.IsKeyPlayer,
		PreferredPosition: position,
	}
	if err := s.playerRepo.Upsert(player); err != nil {
		return fmt.Errorf("failed to upsert player: %w", err)
	}

	if role == models.PlayerRoleAdmin {
		admin := &models.GroupAdmin{GroupID: groupID, UserID: user.ID}
		if err := s.membershipRepo.AddAdmin(admin); err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("failed to add admin: %w", err)
		}
	}
	return nil
}

func (s *TransferService) requireAdmin(groupID, actorID uuid.UUID) error {
	isAdmin, err := s.membershipRepo.IsAdmin(groupID, actorID)
	if err != nil {
		return fmt.Errorf("failed to check admin: %w", err)
	}
	if !isAdmin {
		return apperrors.ErrNotAuthorized
	}
	return nil
}

func clampRating(r int) int {
	if r < models.MinRating {
		return models.MinRating
	}
	if r > models.MaxRating {
		return models.MaxRating
	}
	return r
}
