package websocket

import "github.com/google/uuid"

// RoomRegistry хранит членство сессий в комнатах. Только память,
// при рестарте процесса состояние теряется: клиенты заново шлют join-room.
//
// Реестр не имеет собственной блокировки: все мутации выполняются
// из единственной горутины цикла Hub.Run.
type RoomRegistry struct {
	rooms        map[string]map[uuid.UUID]bool // roomID -> множество сессий
	sessionRooms map[uuid.UUID]map[string]bool // sessionID -> множество комнат
}

func NewRoomRegistry() *RoomRegistry {
	return &RoomRegistry{
		rooms:        make(map[string]map[uuid.UUID]bool),
		sessionRooms: make(map[uuid.UUID]map[string]bool),
	}
}

// Join добавляет сессию в комнату. Повторный join той же комнаты — no-op.
func (r *RoomRegistry) Join(sessionID uuid.UUID, roomID string) {
	if _, ok := r.rooms[roomID]; !ok {
		r.rooms[roomID] = make(map[uuid.UUID]bool)
	}
	r.rooms[roomID][sessionID] = true

	if _, ok := r.sessionRooms[sessionID]; !ok {
		r.sessionRooms[sessionID] = make(map[string]bool)
	}
	r.sessionRooms[sessionID][roomID] = true
}

// Leave убирает сессию из комнаты. Если её там не было — no-op.
func (r *RoomRegistry) Leave(sessionID uuid.UUID, roomID string) {
	if room, ok := r.rooms[roomID]; ok {
		delete(room, sessionID)
		if len(room) == 0 {
			delete(r.rooms, roomID)
		}
	}
	if rooms, ok := r.sessionRooms[sessionID]; ok {
		delete(rooms, roomID)
		if len(rooms) == 0 {
			delete(r.sessionRooms, sessionID)
		}
	}
}

// MembersOf возвращает сессии, находящиеся в комнате сейчас.
// Для пустой комнаты — пустой срез, комнаты не создаются явно.
func (r *RoomRegistry) MembersOf(roomID string) []uuid.UUID {
	room := r.rooms[roomID]
	members := make([]uuid.UUID, 0, len(room))
	for sid := range room {
		members = append(members, sid)
	}
	return members
}

// DropSession удаляет сессию из всех её комнат. Вызывается один раз
// при завершении сессии.
func (r *RoomRegistry) DropSession(sessionID uuid.UUID) {
	for roomID := range r.sessionRooms[sessionID] {
		if room, ok := r.rooms[roomID]; ok {
			delete(room, sessionID)
			if len(room) == 0 {
				delete(r.rooms, roomID)
			}
		}
	}
	delete(r.sessionRooms, sessionID)
}

// Rooms возвращает комнаты, в которых состоит сессия
func (r *RoomRegistry) Rooms(sessionID uuid.UUID) []string {
	set := r.sessionRooms[sessionID]
	rooms := make([]string, 0, len(set))
	for roomID := range set {
		rooms = append(rooms, roomID)
	}
	return rooms
}
