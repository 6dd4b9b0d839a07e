package clock

import "time"

// Clock отдает текущее время в часовом поясе сервиса.
// "Сегодня" для правил бронирования считается именно в этом поясе.
type Clock struct {
	loc *time.Location
}

func New(loc *time.Location) *Clock {
	if loc == nil {
		loc = time.UTC
	}
	return &Clock{loc: loc}
}

// Now возвращает текущее время
func (c *Clock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Fixed всегда возвращает одно и то же время (для тестов)
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}
