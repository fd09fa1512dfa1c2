// Package stubapi is an in-memory implementation of the TalentBridge
// backend REST contract. It exists so the client and CLI can be
// developed and tested without the production backend; it keeps no
// state across restarts.
package stubapi

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/ari/talentbridge/internal/domain"
	"github.com/google/uuid"
)

// ErrEmailExists is returned when registering an address that is taken
var ErrEmailExists = errors.New("email already registered")

// account pairs an identity with its password hash and issued tokens
type account struct {
	user         domain.User
	passwordHash []byte
	tokenRevoked map[string]bool
}

// storedFile keeps uploaded bytes alongside their metadata
type storedFile struct {
	meta domain.StoredFile
	data []byte
}

// Store holds all backend state in memory behind one mutex.
type Store struct {
	mu           sync.Mutex
	accounts     map[uuid.UUID]*account
	emails       map[string]uuid.UUID
	companies    map[uuid.UUID]domain.Company
	jobs         map[uuid.UUID]domain.Job
	candidates   map[uuid.UUID]domain.Candidate
	applications map[uuid.UUID]domain.Application
	chats        map[uuid.UUID][]domain.ChatMessage
	files        map[uuid.UUID]*storedFile
	resetTokens  map[string]uuid.UUID
	chatCount    int
	docsCount    int
	parsedCount  int
}

// NewStore creates an empty Store
func NewStore() *Store {
	return &Store{
		accounts:     make(map[uuid.UUID]*account),
		emails:       make(map[string]uuid.UUID),
		companies:    make(map[uuid.UUID]domain.Company),
		jobs:         make(map[uuid.UUID]domain.Job),
		candidates:   make(map[uuid.UUID]domain.Candidate),
		applications: make(map[uuid.UUID]domain.Application),
		chats:        make(map[uuid.UUID][]domain.ChatMessage),
		files:        make(map[uuid.UUID]*storedFile),
		resetTokens:  make(map[string]uuid.UUID),
	}
}

func (s *Store) createAccount(user domain.User, passwordHash []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.emails[user.Email]; exists {
		return ErrEmailExists
	}
	s.accounts[user.ID] = &account{
		user:         user,
		passwordHash: passwordHash,
		tokenRevoked: make(map[string]bool),
	}
	s.emails[user.Email] = user.ID
	return nil
}

func (s *Store) userByEmail(email string) (domain.User, []byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.emails[email]
	if !ok {
		return domain.User{}, nil, false
	}
	acct := s.accounts[id]
	return acct.user, acct.passwordHash, true
}

func (s *Store) userByID(id uuid.UUID) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.accounts[id]
	if !ok {
		return domain.User{}, false
	}
	return acct.user, true
}

func (s *Store) revokeToken(userID uuid.UUID, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if acct, ok := s.accounts[userID]; ok {
		acct.tokenRevoked[token] = true
	}
}

func (s *Store) tokenRevoked(userID uuid.UUID, token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.accounts[userID]
	if !ok {
		return true
	}
	return acct.tokenRevoked[token]
}

func (s *Store) setPassword(userID uuid.UUID, hash []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if acct, ok := s.accounts[userID]; ok {
		acct.passwordHash = hash
	}
}

func (s *Store) saveCompany(c domain.Company) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.companies[c.ID] = c
}

func (s *Store) company(id uuid.UUID) (domain.Company, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.companies[id]
	return c, ok
}

func (s *Store) listCompanies() []domain.Company {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Company, 0, len(s.companies))
	for _, c := range s.companies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *Store) companyUsers(companyID uuid.UUID) []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.User
	for _, acct := range s.accounts {
		if acct.user.CompanyID != nil && *acct.user.CompanyID == companyID {
			out = append(out, acct.user)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out
}

func (s *Store) saveJob(j domain.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[j.ID] = j
}

func (s *Store) job(id uuid.UUID) (domain.Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[id]
	return j, ok
}

func (s *Store) deleteJob(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.jobs[id]; !ok {
		return false
	}
	delete(s.jobs, id)
	return true
}

func (s *Store) jobsForCompany(companyID uuid.UUID) []domain.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Job
	for _, j := range s.jobs {
		if j.CompanyID == companyID {
			out = append(out, j)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (s *Store) saveCandidate(c domain.Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.candidates[c.ID] = c
}

func (s *Store) candidate(id uuid.UUID) (domain.Candidate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.candidates[id]
	return c, ok
}

func (s *Store) candidatesForCompany(companyID uuid.UUID, jobID *uuid.UUID) []domain.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Candidate
	for _, c := range s.candidates {
		job, ok := s.jobs[c.JobID]
		if !ok || job.CompanyID != companyID {
			continue
		}
		if jobID != nil && c.JobID != *jobID {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedAt.Before(out[j].AppliedAt) })
	return out
}

func (s *Store) saveApplication(a domain.Application) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applications[a.ID] = a
}

func (s *Store) applicationsForUser(userID uuid.UUID) []domain.Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Application
	for _, a := range s.applications {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (s *Store) appendChat(userID uuid.UUID, msgs ...domain.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chats[userID] = append(s.chats[userID], msgs...)
	s.chatCount += len(msgs)
}

func (s *Store) chatHistory(userID uuid.UUID) []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	history := s.chats[userID]
	out := make([]domain.ChatMessage, len(history))
	copy(out, history)
	return out
}

func (s *Store) saveFile(f *storedFile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[f.meta.ID] = f
}

func (s *Store) file(id uuid.UUID) (*storedFile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.files[id]
	return f, ok
}

func (s *Store) deleteFile(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.files[id]; !ok {
		return false
	}
	delete(s.files, id)
	return true
}

func (s *Store) filesForUser(userID uuid.UUID) []domain.StoredFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.StoredFile
	for _, f := range s.files {
		if f.meta.UserID == userID {
			out = append(out, f.meta)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (s *Store) createResetToken(userID uuid.UUID) string {
	token := uuid.New().String()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetTokens[token] = userID
	return token
}

func (s *Store) consumeResetToken(token string) (uuid.UUID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	userID, ok := s.resetTokens[token]
	if ok {
		delete(s.resetTokens, token)
	}
	return userID, ok
}

func (s *Store) countDocGenerated() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docsCount++
}

func (s *Store) countResumeParsed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parsedCount++
}

// counts reports totals for the analytics and dashboard endpoints
func (s *Store) counts() (users, companies, jobs, applications, chats, files int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.accounts), len(s.companies), len(s.jobs), len(s.applications), s.chatCount, len(s.files)
}

func (s *Store) statsFor(user domain.User) domain.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stats domain.DashboardStats
	switch user.Role {
	case domain.RoleRecruiter:
		if user.CompanyID == nil {
			return stats
		}
		for _, j := range s.jobs {
			if j.CompanyID != *user.CompanyID {
				continue
			}
			if j.Status == domain.JobStatusOpen {
				stats.ActiveJobs++
			}
			for _, c := range s.candidates {
				if c.JobID != j.ID {
					continue
				}
				stats.TotalCandidates++
				switch c.Status {
				case domain.CandidateStatusNew:
					stats.NewApplications++
				case domain.CandidateStatusInterview:
					stats.Interviews++
				}
			}
		}
	case domain.RoleApplicant:
		for _, a := range s.applications {
			if a.UserID == user.ID {
				stats.ApplicationsSubmitted++
			}
		}
		stats.DocumentsGenerated = s.docsCount
		stats.ResumesParsed = s.parsedCount
	case domain.RoleAdmin:
		stats.TotalUsers = len(s.accounts)
		stats.TotalCompanies = len(s.companies)
	}
	return stats
}

// touch updates a candidate's timestamps consistently
func touch(c *domain.Candidate) {
	c.UpdatedAt = time.Now()
}
