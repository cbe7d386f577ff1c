package workers

import (
	"fmt"
	"log"
	"time"

	"github.com/Rizkaicaaa/pengelolaan-aset-api/app/model"
	"github.com/Rizkaicaaa/pengelolaan-aset-api/app/repo"
	"github.com/Rizkaicaaa/pengelolaan-aset-api/helper"
)

// Reminder periodically tells connected reviewers how many requests have
// been waiting longer than MaxAge.
type Reminder struct {
	Requests repo.ProcurementRepository
	Users    repo.UserRepository
	Hub      *helper.Hub
	Interval time.Duration
	MaxAge   time.Duration
}

func NewReminder(requests repo.ProcurementRepository, users repo.UserRepository, hub *helper.Hub, interval, maxAge time.Duration) *Reminder {
	return &Reminder{
		Requests: requests,
		Users:    users,
		Hub:      hub,
		Interval: interval,
		MaxAge:   maxAge,
	}
}

func (r *Reminder) Start() {
	ticker := time.NewTicker(r.Interval)
	go func() {
		r.Check()
		for range ticker.C {
			r.Check()
		}
	}()
}

func (r *Reminder) Check() {
	log.Println("Worker: checking for stale pending requests...")

	count, err := r.Requests.CountPendingOlderThan(r.MaxAge)
	if err != nil {
		log.Println("Worker error:", err)
		return
	}
	if count == 0 {
		return
	}

	reviewers, err := r.Users.FindByRole(model.RoleAdminJurusan)
	if err != nil {
		log.Println("Worker error:", err)
		return
	}

	content := fmt.Sprintf("%d pengajuan menunggu persetujuan lebih dari %d hari", count, int(r.MaxAge.Hours()/24))
	for _, reviewer := range reviewers {
		id := reviewer.ID.String()
		if r.Hub.Connected(id) {
			r.Hub.Notify(id, content)
		}
	}
}
