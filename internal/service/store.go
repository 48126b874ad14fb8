package service

import (
	"gorm.io/gorm"

	"tg-supportbot/internal/logger"
	"tg-supportbot/internal/models"
	"tg-supportbot/internal/storage"
)

// Store is the persistence facade the handlers talk to. Every method
// absorbs database errors at the point of call: failures are logged and
// callers receive an empty or default result, never an error that could
// abort update routing.
type Store struct {
	users      *storage.UserRepository
	complaints *storage.ComplaintRepository
	words      *storage.WordRepository
	responses  *storage.ResponseRepository
	warnings   *storage.WarningRepository
	settings   *storage.SettingsRepository
}

// NewStore builds the repositories and ensures their tables exist.
func NewStore(db *gorm.DB) (*Store, error) {
	s := &Store{
		users:      storage.NewUserRepository(db),
		complaints: storage.NewComplaintRepository(db),
		words:      storage.NewWordRepository(db),
		responses:  storage.NewResponseRepository(db),
		warnings:   storage.NewWarningRepository(db),
		settings:   storage.NewSettingsRepository(db),
	}

	migrations := []func() error{
		s.users.MigrateTable,
		s.complaints.MigrateTable,
		s.words.MigrateTable,
		s.responses.MigrateTable,
		s.warnings.MigrateTable,
		s.settings.MigrateTable,
	}
	for _, migrate := range migrations {
		if err := migrate(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// UpsertUser creates or refreshes the user record.
func (s *Store) UpsertUser(userID int64, username, firstName, lastName string) {
	user := &models.User{
		UserID:    userID,
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
	}
	if err := s.users.Upsert(user); err != nil {
		logger.Warningf("Error upserting user %d: %v", userID, err)
	}
}

// CountUsers returns the number of known users, 0 on failure.
func (s *Store) CountUsers() int64 {
	count, err := s.users.Count()
	if err != nil {
		logger.Warningf("Error counting users: %v", err)
		return 0
	}
	return count
}

// AddComplaint persists a pending complaint and returns its assigned id.
// A zero id means persistence failed and no confirmation should be sent.
func (s *Store) AddComplaint(userID int64, username, message string) uint {
	complaint := &models.Complaint{
		UserID:   userID,
		Username: username,
		Message:  message,
		Status:   models.ComplaintPending,
	}
	if err := s.complaints.Create(complaint); err != nil {
		logger.Warningf("Error adding complaint for user %d: %v", userID, err)
		return 0
	}
	return complaint.ID
}

// ComplaintStats returns complaint counts by status, zeroes on failure.
func (s *Store) ComplaintStats() storage.ComplaintStats {
	stats, err := s.complaints.Stats()
	if err != nil {
		logger.Warningf("Error getting complaint stats: %v", err)
		return storage.ComplaintStats{}
	}
	return stats
}

// AddBannedWord stores a banned word (lowercased).
func (s *Store) AddBannedWord(word string) {
	if err := s.words.Add(word); err != nil {
		logger.Warningf("Error adding banned word %q: %v", word, err)
	}
}

// RemoveBannedWord removes a banned word.
func (s *Store) RemoveBannedWord(word string) {
	if err := s.words.Remove(word); err != nil {
		logger.Warningf("Error removing banned word %q: %v", word, err)
	}
}

// BannedWords returns all banned words, empty on failure.
func (s *Store) BannedWords() []string {
	words, err := s.words.List()
	if err != nil {
		logger.Warningf("Error getting banned words: %v", err)
		return nil
	}
	return words
}

// AddAutoResponse stores a trigger/response pair.
func (s *Store) AddAutoResponse(trigger, response string) {
	if err := s.responses.Add(trigger, response); err != nil {
		logger.Warningf("Error adding auto response for %q: %v", trigger, err)
	}
}

// AutoResponses returns all auto-responses in storage order, empty on failure.
func (s *Store) AutoResponses() []models.AutoResponse {
	responses, err := s.responses.List()
	if err != nil {
		logger.Warningf("Error getting auto responses: %v", err)
		return nil
	}
	return responses
}

// CountAutoResponses returns the number of auto-responses, 0 on failure.
func (s *Store) CountAutoResponses() int64 {
	count, err := s.responses.Count()
	if err != nil {
		logger.Warningf("Error counting auto responses: %v", err)
		return 0
	}
	return count
}

// AddWarning records one warning for the user.
func (s *Store) AddWarning(userID int64, reason string) {
	if err := s.warnings.Add(userID, reason); err != nil {
		logger.Warningf("Error adding warning for user %d: %v", userID, err)
	}
}

// WarningCount returns the user's current warning count, 0 on failure.
func (s *Store) WarningCount(userID int64) int {
	warnings, err := s.warnings.ListByUser(userID)
	if err != nil {
		logger.Warningf("Error getting warnings for user %d: %v", userID, err)
		return 0
	}
	return len(warnings)
}

// ClearWarnings deletes all warnings for the user.
func (s *Store) ClearWarnings(userID int64) {
	if err := s.warnings.ClearByUser(userID); err != nil {
		logger.Warningf("Error clearing warnings for user %d: %v", userID, err)
	}
}

// Settings returns the group settings singleton, defaults on failure or
// when no row exists yet.
func (s *Store) Settings() models.GroupSettings {
	settings, err := s.settings.Get()
	if err != nil {
		logger.Warningf("Error getting group settings: %v", err)
	}
	return settings
}

// UpdateSettings applies mutate to the current settings and writes the
// result back. No optimistic concurrency control: last writer wins.
func (s *Store) UpdateSettings(mutate func(*models.GroupSettings)) {
	settings := s.Settings()
	mutate(&settings)
	if err := s.settings.Save(settings); err != nil {
		logger.Warningf("Error updating group settings: %v", err)
	}
}
