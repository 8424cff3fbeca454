package event

import "fmt"

var typeNames = map[EventType]string{
	EventVolleySpawned:  "VolleySpawned",
	EventVolleyRejected: "VolleyRejected",
	EventVolleyExpired:  "VolleyExpired",
	EventEnemyKilled:    "EnemyKilled",
	EventEnemySpawned:   "EnemySpawned",
	EventPlayerKilled:   "PlayerKilled",
}

func (t EventType) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}
