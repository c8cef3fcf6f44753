package model

import "time"

// Code короткий код ссылки
type Code string

func (c Code) String() string {
	return string(c)
}

// URL оригинальный адрес, на который ведёт ссылка
type URL string

func (u URL) String() string {
	return string(u)
}

// AnonymousVisitor общий идентификатор для посетителей без идентичности
const AnonymousVisitor = "anonymous"

// Visit одно посещение короткой ссылки
type Visit struct {
	Timestamp time.Time
	VisitorID string
}

// Day возвращает дату посещения в UTC, например "January 02, 2006"
func (v Visit) Day() string {
	return v.Timestamp.UTC().Format("January 02, 2006")
}

// Clock возвращает время посещения в UTC, например "15:04:05"
func (v Visit) Clock() string {
	return v.Timestamp.UTC().Format("15:04:05")
}

// Link короткая ссылка вместе со статистикой посещений.
// Инварианты: UniqueVisitors == len(VisitorIDs), TotalVisits == len(Visits).
type Link struct {
	ShortCode      Code
	LongURL        URL
	OwnerID        UserID
	CreatedAt      time.Time
	TotalVisits    int64
	UniqueVisitors int64
	VisitorIDs     map[string]struct{}
	Visits         []Visit
}

// NewLink создает ссылку с пустой статистикой
func NewLink(code Code, longURL URL, ownerID UserID, createdAt time.Time) *Link {
	return &Link{
		ShortCode:  code,
		LongURL:    longURL,
		OwnerID:    ownerID,
		CreatedAt:  createdAt,
		VisitorIDs: make(map[string]struct{}),
		Visits:     []Visit{},
	}
}

// RecordVisit учитывает посещение. Пустой visitorID считается AnonymousVisitor.
func (l *Link) RecordVisit(visitorID string, at time.Time) {
	if visitorID == "" {
		visitorID = AnonymousVisitor
	}
	if l.VisitorIDs == nil {
		l.VisitorIDs = make(map[string]struct{})
	}

	l.TotalVisits++
	if _, seen := l.VisitorIDs[visitorID]; !seen {
		l.VisitorIDs[visitorID] = struct{}{}
		l.UniqueVisitors++
	}
	l.Visits = append(l.Visits, Visit{Timestamp: at, VisitorID: visitorID})
}

// Retarget меняет адрес ссылки и обнуляет статистику: после правки старые посещения не относятся к новому адресу
func (l *Link) Retarget(longURL URL) {
	l.LongURL = longURL
	l.TotalVisits = 0
	l.UniqueVisitors = 0
	l.VisitorIDs = make(map[string]struct{})
	l.Visits = []Visit{}
}

// IsOwnedBy проверяет, что ссылка принадлежит пользователю
func (l *Link) IsOwnedBy(userID UserID) bool {
	return userID != "" && l.OwnerID == userID
}

// Clone создает глубокую копию ссылки
func (l *Link) Clone() *Link {
	visitors := make(map[string]struct{}, len(l.VisitorIDs))
	for id := range l.VisitorIDs {
		visitors[id] = struct{}{}
	}

	visits := make([]Visit, len(l.Visits))
	copy(visits, l.Visits)

	return &Link{
		ShortCode:      l.ShortCode,
		LongURL:        l.LongURL,
		OwnerID:        l.OwnerID,
		CreatedAt:      l.CreatedAt,
		TotalVisits:    l.TotalVisits,
		UniqueVisitors: l.UniqueVisitors,
		VisitorIDs:     visitors,
		Visits:         visits,
	}
}
