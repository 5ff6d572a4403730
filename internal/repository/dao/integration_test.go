package dao

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	testDBOnce sync.Once
	testDB     *gorm.DB
	testDBErr  error
)

// openTestDB starts a throwaway postgres container shared by every test in
// the package. Tests are skipped when no docker daemon is reachable.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	testDBOnce.Do(func() {
		pool, err := dockertest.NewPool("")
		if err != nil {
			testDBErr = fmt.Errorf("dockertest.NewPool -> %w", err)

			return
		}
		if err = pool.Client.Ping(); err != nil {
			testDBErr = fmt.Errorf("pool.Client.Ping -> %w", err)

			return
		}

		resource, err := pool.RunWithOptions(&dockertest.RunOptions{
			Repository: "postgres",
			Tag:        "16-alpine",
			Env: []string{
				"POSTGRES_USER=test",
				"POSTGRES_PASSWORD=secret",
				"POSTGRES_DB=billetterie_test",
			},
		}, func(config *docker.HostConfig) {
			config.AutoRemove = true
			config.RestartPolicy = docker.RestartPolicy{Name: "no"}
		})
		if err != nil {
			testDBErr = fmt.Errorf("pool.RunWithOptions -> %w", err)

			return
		}
		_ = resource.Expire(300)

		dsn := fmt.Sprintf(
			"host=localhost port=%s user=test password=secret dbname=billetterie_test sslmode=disable",
			resource.GetPort("5432/tcp"),
		)

		pool.MaxWait = 2 * time.Minute
		testDBErr = pool.Retry(func() error {
			db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
			if err != nil {
				return err
			}

			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			if err = sqlDB.Ping(); err != nil {
				return err
			}

			testDB = db

			return nil
		})
		if testDBErr != nil {
			return
		}

		testDBErr = InitTables(testDB)
	})

	if testDBErr != nil {
		t.Skipf("postgres unavailable: %v", testDBErr)
	}

	return testDB
}

func createTestUser(t *testing.T, db *gorm.DB, email string) User {
	t.Helper()

	user, err := NewUserDAO(db).Insert(context.Background(), User{
		Email:       email,
		Password:    "hashed",
		Name:        "Test User",
		DateOfBirth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	return user
}

func createTestConference(t *testing.T, db *gorm.DB, capacity int) Conference {
	t.Helper()

	conference, err := NewConferenceDAO(db).Insert(context.Background(), Conference{
		Title:       "Table ronde",
		Description: "Une table ronde sur l'avenir du festival.",
		Date:        time.Date(2026, 9, 12, 14, 0, 0, 0, time.UTC),
		Location:    "Salle A",
		Capacity:    capacity,
		Category:    "debat",
	})
	require.NoError(t, err)

	return conference
}

func TestUserDAO_Insert_DuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	createTestUser(t, db, "dup@example.com")

	_, err := NewUserDAO(db).Insert(ctx, User{
		Email:       "dup@example.com",
		Password:    "hashed",
		Name:        "Other User",
		DateOfBirth: time.Date(1992, 5, 5, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrUserEmailExists)
}

func TestCartDAO_Confirm(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	user := createTestUser(t, db, "confirm@example.com")
	cartDAO := NewCartDAO(db)

	_, err := cartDAO.InsertItem(ctx, user.ID, CartItem{
		Type:        "NORMAL",
		Price:       30,
		Name:        "Alice Martin",
		Email:       "alice@example.com",
		DateOfBirth: time.Date(1995, 4, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = cartDAO.InsertItem(ctx, user.ID, CartItem{
		Type:        "GRATUIT",
		Price:       0,
		Name:        "Petit Paul",
		Email:       "paul@example.com",
		DateOfBirth: time.Date(2018, 7, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	tickets, err := cartDAO.Confirm(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, tickets, 2)

	byType := make(map[string]Ticket, len(tickets))
	for _, ticket := range tickets {
		byType[ticket.Type] = ticket
	}
	require.Contains(t, byType, "NORMAL")
	require.Contains(t, byType, "GRATUIT")
	assert.Equal(t, 30, byType["NORMAL"].Price)
	assert.Equal(t, "Alice Martin", byType["NORMAL"].HolderName)
	assert.Equal(t, 0, byType["GRATUIT"].Price)

	owned, err := NewTicketDAO(db).FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, owned, 2)

	cart, err := cartDAO.FindOrCreateByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartDAO_Confirm_EmptyCart(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	user := createTestUser(t, db, "empty@example.com")
	cartDAO := NewCartDAO(db)

	_, err := cartDAO.FindOrCreateByUserID(ctx, user.ID)
	require.NoError(t, err)

	_, err = cartDAO.Confirm(ctx, user.ID)
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestCartDAO_Confirm_RollsBackWhenTicketInsertFails(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	user := createTestUser(t, db, "rollback@example.com")
	cartDAO := NewCartDAO(db)

	_, err := cartDAO.InsertItem(ctx, user.ID, CartItem{
		Type:        "NORMAL",
		Price:       30,
		Name:        "Alice Martin",
		Email:       "alice@example.com",
		DateOfBirth: time.Date(1995, 4, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = cartDAO.InsertItem(ctx, user.ID, CartItem{
		Type:        "SOUTIEN",
		Price:       50,
		Name:        "Bob Leroy",
		Email:       "bob@example.com",
		DateOfBirth: time.Date(1984, 11, 20, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// Make the ticket insert fail inside the transaction.
	errTicketInsert := errors.New("ticket insert failed")
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("fail_ticket_insert", func(tx *gorm.DB) {
		if tx.Statement.Table == "tickets" {
			tx.AddError(errTicketInsert)
		}
	}))
	defer func() {
		require.NoError(t, db.Callback().Create().Remove("fail_ticket_insert"))
	}()

	_, err = cartDAO.Confirm(ctx, user.ID)
	require.ErrorIs(t, err, errTicketInsert)

	// Everything rolled back: the cart and its items survive, no ticket exists.
	cart, err := cartDAO.FindOrCreateByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)

	tickets, err := NewTicketDAO(db).FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, tickets)
}

func TestCartDAO_DeleteItem_OwnershipChecked(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	owner := createTestUser(t, db, "owner@example.com")
	intruder := createTestUser(t, db, "intruder@example.com")
	cartDAO := NewCartDAO(db)

	item, err := cartDAO.InsertItem(ctx, owner.ID, CartItem{
		Type:        "SOLIDAIRE",
		Price:       15,
		Name:        "Bob Leroy",
		Email:       "bob@example.com",
		DateOfBirth: time.Date(1984, 11, 20, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	err = cartDAO.DeleteItem(ctx, intruder.ID, item.ID)
	assert.ErrorIs(t, err, ErrCartItemNotFound)

	err = cartDAO.DeleteItem(ctx, owner.ID, item.ID)
	assert.NoError(t, err)
}

func TestPlanningDAO_Register(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	first := createTestUser(t, db, "first@example.com")
	second := createTestUser(t, db, "second@example.com")
	third := createTestUser(t, db, "third@example.com")
	conference := createTestConference(t, db, 2)
	planningDAO := NewPlanningDAO(db)

	entry, err := planningDAO.Register(ctx, first.ID, conference.ID)
	require.NoError(t, err)
	assert.Equal(t, conference.ID, entry.ConferenceID)

	_, err = planningDAO.Register(ctx, first.ID, conference.ID)
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	_, err = planningDAO.Register(ctx, second.ID, conference.ID)
	require.NoError(t, err)

	_, err = planningDAO.Register(ctx, third.ID, conference.ID)
	assert.ErrorIs(t, err, ErrConferenceFull)
}

func TestPlanningDAO_Register_ConcurrentLastSlot(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	first := createTestUser(t, db, "race1@example.com")
	second := createTestUser(t, db, "race2@example.com")
	conference := createTestConference(t, db, 1)
	planningDAO := NewPlanningDAO(db)

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for _, userID := range []uint{first.ID, second.ID} {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			_, err := planningDAO.Register(ctx, id, conference.ID)
			errs <- err
		}(userID)
	}
	wg.Wait()
	close(errs)

	var successes, conflicts int
	for err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrConferenceFull):
			conflicts++
		default:
			t.Fatalf("unexpected registration error: %v", err)
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)

	entries := make([]PlanningEntry, 0)
	require.NoError(t, db.Where("conference_id = ?", conference.ID).Find(&entries).Error)
	assert.Len(t, entries, 1)
}

func TestPlanningDAO_Register_UnknownConference(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "lost@example.com")

	_, err := NewPlanningDAO(db).Register(context.Background(), user.ID, 999999)

	assert.ErrorIs(t, err, ErrConferenceNotFound)
}

func TestPlanningDAO_FindByUserID_OrderedByConferenceDate(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	user := createTestUser(t, db, "agenda@example.com")
	conferenceDAO := NewConferenceDAO(db)
	planningDAO := NewPlanningDAO(db)

	late, err := conferenceDAO.Insert(ctx, Conference{
		Title:       "Cloture",
		Description: "La session de cloture du festival.",
		Date:        time.Date(2026, 9, 14, 18, 0, 0, 0, time.UTC),
		Location:    "Grand amphi",
		Capacity:    100,
		Category:    "pleniere",
	})
	require.NoError(t, err)

	early, err := conferenceDAO.Insert(ctx, Conference{
		Title:       "Ouverture",
		Description: "La session d'ouverture du festival.",
		Date:        time.Date(2026, 9, 12, 9, 0, 0, 0, time.UTC),
		Location:    "Grand amphi",
		Capacity:    100,
		Category:    "pleniere",
	})
	require.NoError(t, err)

	_, err = planningDAO.Register(ctx, user.ID, late.ID)
	require.NoError(t, err)
	_, err = planningDAO.Register(ctx, user.ID, early.ID)
	require.NoError(t, err)

	entries, err := planningDAO.FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, early.ID, entries[0].ConferenceID)
	assert.Equal(t, late.ID, entries[1].ConferenceID)
	assert.Equal(t, "Ouverture", entries[0].Conference.Title)
}
