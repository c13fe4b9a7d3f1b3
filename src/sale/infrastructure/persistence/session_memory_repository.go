package persistence

import (
	"sync"

	"github.com/google/uuid"

	"github.com/mirlondev/magasin-sub000/src/sale/domain/entity"
	"github.com/mirlondev/magasin-sub000/src/sale/domain/port"
)

// sessionHandle una sesión junto a su mutex. El mutex es por sesión:
// dos cajas distintas nunca se bloquean entre sí.
type sessionHandle struct {
	mu      sync.Mutex
	session *entity.SaleSession
}

// SessionMemoryRepository sesiones de venta activas, solo en memoria.
//
// El RWMutex del repositorio guarda el mapa; el mutex de cada handle
// serializa los requests concurrentes sobre una misma sesión. Las
// sesiones nunca se persisten: al confirmar o cancelar se eliminan.
type SessionMemoryRepository struct {
	sessions map[uuid.UUID]*sessionHandle
	mu       sync.RWMutex
}

// NewSessionMemoryRepository crea un repositorio vacío
func NewSessionMemoryRepository() port.SaleSessionRepository {
	return &SessionMemoryRepository{
		sessions: make(map[uuid.UUID]*sessionHandle),
	}
}

// Save guarda o reemplaza una sesión
func (r *SessionMemoryRepository) Save(session *entity.SaleSession) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = &sessionHandle{session: session}
}

// Update ejecuta fn con el lock de la sesión tomado. El lock del mapa se
// suelta antes de tomar el de la sesión: fn puede tardar (por ejemplo un
// submit al backend) sin frenar al resto de las cajas.
func (r *SessionMemoryRepository) Update(id uuid.UUID, fn func(*entity.SaleSession) error) error {
	r.mu.RLock()
	handle, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return entity.ErrSessionNotFound
	}

	handle.mu.Lock()
	defer handle.mu.Unlock()
	return fn(handle.session)
}

// Delete elimina una sesión; no-op si no existe
func (r *SessionMemoryRepository) Delete(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}
