package worker

import (
	"sync"
	"time"

	"stars_admin/internal/domain/audit/model"
	"stars_admin/internal/domain/audit/repository"
	"stars_admin/pkg/logger"

	"go.uber.org/zap"
)

// AuditTask is one audit record waiting to be persisted.
type AuditTask struct {
	Record model.ActionRecord
	Retry  int
}

// WorkerPool writes audit records off the action path. A slow or briefly
// unavailable audit store must never delay a moderation action, so records
// are queued and retried in the background.
type WorkerPool struct {
	TaskQueue  chan AuditTask
	RetryQueue chan AuditTask
	Repo       repository.AuditRepository
	WorkerNum  int
	MaxRetry   int

	quit chan struct{}
	wg   sync.WaitGroup
}

// NewWorkerPool creates a pool persisting audit records through repo.
func NewWorkerPool(repo repository.AuditRepository, workerNum int, bufferSize int) *WorkerPool {
	return &WorkerPool{
		TaskQueue:  make(chan AuditTask, bufferSize),
		RetryQueue: make(chan AuditTask, bufferSize/2),
		Repo:       repo,
		WorkerNum:  workerNum,
		MaxRetry:   3,
		quit:       make(chan struct{}),
	}
}

// Start launches the workers.
func (p *WorkerPool) Start() {
	for i := 0; i < p.WorkerNum; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	p.wg.Add(1)
	go p.retryWorker()
	logger.Log.Info("audit worker pool started", zap.Int("workers", p.WorkerNum))
}

// Stop drains the main queue and waits for the workers to finish. Records
// still in the retry queue are dropped; they already failed once.
func (p *WorkerPool) Stop() {
	close(p.quit)
	p.wg.Wait()
	logger.Log.Info("audit worker pool stopped")
}

// Enqueue submits a record without blocking. A full queue drops the record
// and logs it; the audit trail is best-effort.
func (p *WorkerPool) Enqueue(record model.ActionRecord) {
	select {
	case p.TaskQueue <- AuditTask{Record: record}:
	default:
		logger.Log.Warn("audit queue full, record dropped",
			zap.String("entity", record.Entity),
			zap.String("entityId", record.EntityID),
			zap.String("action", record.Action))
	}
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()
	for {
		select {
		case task := <-p.TaskQueue:
			p.handle(id, task)
		case <-p.quit:
			// Drain what is still queued before exiting.
			for {
				select {
				case task := <-p.TaskQueue:
					p.handle(id, task)
				default:
					return
				}
			}
		}
	}
}

func (p *WorkerPool) handle(id int, task AuditTask) {
	if err := p.Repo.Create(&task.Record); err != nil {
		logger.Log.Warn("audit write failed",
			zap.Int("worker", id),
			zap.String("entityId", task.Record.EntityID),
			zap.Error(err))

		if task.Retry >= p.MaxRetry {
			logger.Log.Error("audit record exceeded max retries, dropped",
				zap.String("entityId", task.Record.EntityID))
			return
		}
		task.Retry++
		select {
		case <-p.quit:
			logger.Log.Warn("audit record dropped on shutdown",
				zap.String("entityId", task.Record.EntityID))
		case p.RetryQueue <- task:
		default:
			logger.Log.Warn("audit retry queue full, record dropped",
				zap.String("entityId", task.Record.EntityID))
		}
	}
}

func (p *WorkerPool) retryWorker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.quit:
			return
		case task := <-p.RetryQueue:
			// Back off before retrying.
			timer := time.NewTimer(time.Duration(task.Retry) * time.Second)
			select {
			case <-p.quit:
				timer.Stop()
				return
			case <-timer.C:
			}

			select {
			case <-p.quit:
				return
			case p.TaskQueue <- task:
			default:
				logger.Log.Warn("audit queue full on retry, record dropped",
					zap.String("entityId", task.Record.EntityID))
			}
		}
	}
}
