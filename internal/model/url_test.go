package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLink_RecordVisit проверяет подсчет посещений и уникальных посетителей
func TestLink_RecordVisit(t *testing.T) {
	// Arrange
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	link := NewLink("b2xVn2", "http://example.com", "u1", now)

	// Act
	link.RecordVisit("visitor-A", now)
	link.RecordVisit("visitor-A", now.Add(time.Minute))
	link.RecordVisit("visitor-B", now.Add(2*time.Minute))

	// Assert
	assert.Equal(t, int64(3), link.TotalVisits)
	assert.Equal(t, int64(2), link.UniqueVisitors)
	require.Len(t, link.Visits, 3)
	assert.Equal(t, "visitor-A", link.Visits[0].VisitorID)
	assert.Equal(t, "visitor-B", link.Visits[2].VisitorID)
	assert.Equal(t, now.Add(2*time.Minute), link.Visits[2].Timestamp)
}

// TestLink_RecordVisit_Anonymous проверяет что анонимные посещения попадают в одну корзину
func TestLink_RecordVisit_Anonymous(t *testing.T) {
	link := NewLink("code12", "http://example.com", "u1", time.Now())

	link.RecordVisit("", time.Now())
	link.RecordVisit("", time.Now())

	assert.Equal(t, int64(2), link.TotalVisits)
	assert.Equal(t, int64(1), link.UniqueVisitors)
	assert.Contains(t, link.VisitorIDs, AnonymousVisitor)
	assert.Equal(t, AnonymousVisitor, link.Visits[1].VisitorID)
}

// TestLink_Retarget проверяет сброс статистики при смене адреса
func TestLink_Retarget(t *testing.T) {
	link := NewLink("code12", "http://example.com", "u1", time.Now())
	link.RecordVisit("visitor-A", time.Now())
	link.RecordVisit("visitor-B", time.Now())

	link.Retarget("http://new-url.com")

	assert.Equal(t, URL("http://new-url.com"), link.LongURL)
	assert.Zero(t, link.TotalVisits)
	assert.Zero(t, link.UniqueVisitors)
	assert.Empty(t, link.VisitorIDs)
	assert.Empty(t, link.Visits)
	assert.Equal(t, UserID("u1"), link.OwnerID)
}

func TestLink_IsOwnedBy(t *testing.T) {
	link := NewLink("code12", "http://example.com", "u1", time.Now())

	assert.True(t, link.IsOwnedBy("u1"))
	assert.False(t, link.IsOwnedBy("u2"))
	assert.False(t, link.IsOwnedBy(""))
}

// TestLink_Clone проверяет что копия независима от оригинала
func TestLink_Clone(t *testing.T) {
	original := NewLink("code12", "http://example.com", "u1", time.Now())
	original.RecordVisit("visitor-A", time.Now())

	clone := original.Clone()
	assert.Equal(t, original, clone)

	clone.RecordVisit("visitor-B", time.Now())
	clone.LongURL = "http://other.com"

	assert.Equal(t, int64(1), original.TotalVisits)
	assert.Len(t, original.Visits, 1)
	assert.NotContains(t, original.VisitorIDs, "visitor-B")
	assert.Equal(t, URL("http://example.com"), original.LongURL)
}

// TestVisit_Format проверяет формат даты и времени посещения
func TestVisit_Format(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	visit := Visit{Timestamp: time.Date(2024, 3, 5, 1, 2, 3, 0, loc)}

	assert.Equal(t, "March 04, 2024", visit.Day())
	assert.Equal(t, "22:02:03", visit.Clock())
}

func TestUser_Clone(t *testing.T) {
	user := &User{ID: "u1", Email: "user@example.com", PasswordHash: "hash"}

	clone := user.Clone()
	clone.Email = "changed@example.com"

	assert.Equal(t, "user@example.com", user.Email)
	assert.Equal(t, UserID("u1"), clone.ID)
}
