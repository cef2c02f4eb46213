// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"duet/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options control how much demo data the seeder creates.
type Options struct {
	NumUsers    int
	NumLikes    int
	ShouldClean bool
}

var roles = []string{
	"Vocalist", "Guitarist", "Bassist", "Drummer", "Keyboardist",
	"Producer", "DJ", "Violinist", "Saxophonist", "Songwriter",
	"Cellist", "Trumpeter", "Beatmaker", "Sound Engineer",
}

var openers = []string{
	"Hey, loved your audio preview!",
	"Your sound is exactly what our project needs.",
	"Want to jam sometime this week?",
	"I have a track that could use your style.",
	"What gear do you record with?",
}

// Seeder builds and persists demo entities.
type Seeder struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // Weak random number generator is fine for seeding
	return &Seeder{db: db, r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Run populates the database with demo musicians, likes, matches, and
// conversation starters on the mutual ones.
func (s *Seeder) Run(opts Options) error {
	log.Printf("Starting database seeding with %d users and %d likes...", opts.NumUsers, opts.NumLikes)

	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	users, err := s.CreateUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d demo users created", len(users))

	matches, err := s.createLikes(users, opts.NumLikes)
	if err != nil {
		return fmt.Errorf("failed to create likes: %w", err)
	}
	log.Printf("%d like rows created", len(matches))

	sent, err := s.createMessages(matches)
	if err != nil {
		return fmt.Errorf("failed to create messages: %w", err)
	}
	log.Printf("%d messages created", sent)

	log.Println("Database seeding completed successfully")
	return nil
}

// ClearAll removes all seeded rows. PostgreSQL only.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	return s.db.Exec(`TRUNCATE TABLE messages, matches, users CASCADE;`).Error
}

// CreateUser constructs and persists a demo user. Optional override
// functions may modify the generated user before saving.
func (s *Seeder) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Email:           gofakeit.Email(),
		Name:            gofakeit.Name(),
		Role:            roles[s.r.Intn(len(roles))],
		ImageURL:        fmt.Sprintf("https://i.pravatar.cc/300?u=%s", gofakeit.UUID()),
		AudioPreviewURL: fmt.Sprintf("https://cdn.duet.example/previews/%s.mp3", gofakeit.UUID()),
	}

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user.Password = string(hashedPassword)

	for _, override := range overrides {
		override(user)
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUsers persists count demo users. The first one always has a
// predictable login for manual testing.
func (s *Seeder) CreateUsers(count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)

	if count > 0 {
		demo, err := s.CreateUser(func(u *models.User) {
			u.Email = "demo@duet.example"
			u.Name = "Demo Musician"
			u.Role = "Vocalist"
		})
		if err != nil {
			return nil, err
		}
		users = append(users, demo)
	}

	for i := len(users); i < count; i++ {
		// Suffix keeps generated emails unique under the db constraint
		n := i
		user, err := s.CreateUser(func(u *models.User) {
			u.Email = fmt.Sprintf("%s.%d@duet.example", gofakeit.Username(), n)
		})
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// createLikes records likes between random user pairs. Roughly a third
// of the pairs get a reciprocal like and become mutual matches.
func (s *Seeder) createLikes(users []*models.User, count int) ([]*models.Match, error) {
	if len(users) < 2 {
		return nil, nil
	}

	matches := make([]*models.Match, 0, count)
	seen := map[string]bool{}

	for i := 0; i < count; i++ {
		a := users[s.r.Intn(len(users))]
		b := users[s.r.Intn(len(users))]
		if a.ID == b.ID {
			continue
		}
		key := models.PairKeyFor(a.ID, b.ID)
		if seen[key] {
			continue
		}
		seen[key] = true

		match := &models.Match{
			User1ID:  a.ID,
			User2ID:  b.ID,
			IsMutual: s.r.Intn(3) == 0,
		}
		if err := s.db.Create(match).Error; err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}
	return matches, nil
}

// createMessages starts a short conversation inside every mutual match.
func (s *Seeder) createMessages(matches []*models.Match) (int, error) {
	sent := 0
	for _, m := range matches {
		if !m.IsMutual {
			continue
		}

		n := 1 + s.r.Intn(4)
		senders := []string{m.User1ID, m.User2ID}
		base := time.Now().Add(-time.Duration(s.r.Intn(72)) * time.Hour)

		for i := 0; i < n; i++ {
			content := openers[s.r.Intn(len(openers))]
			if i > 0 {
				content = gofakeit.Sentence(6 + s.r.Intn(8))
			}
			msg := &models.Message{
				MatchID:   m.ID,
				SenderID:  senders[i%2],
				Content:   content,
				CreatedAt: base.Add(time.Duration(i) * time.Minute),
			}
			if err := s.db.Create(msg).Error; err != nil {
				return sent, err
			}
			sent++
		}
	}
	return sent, nil
}
