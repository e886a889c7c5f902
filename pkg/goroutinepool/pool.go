package goroutinepool

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// Task 代表一个需要执行的任务
type Task struct {
	ID       string
	Function func() error
	Callback func(error)
	Timeout  time.Duration
	Retry    int
}

// Worker 工作协程
type Worker struct {
	ID         int
	TaskChan   chan *Task
	WorkerPool chan chan *Task
	ctx        context.Context
}

// Pool goroutine池
type Pool struct {
	WorkerPool chan chan *Task
	TaskQueue  chan *Task
	Workers    []*Worker
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup

	// 统计信息
	totalTasks     int64
	completedTasks int64
	failedTasks    int64
}

var (
	globalPool *Pool
	poolOnce   sync.Once
)

// GetPool 获取全局goroutine池
func GetPool() *Pool {
	poolOnce.Do(func() {
		globalPool = NewPool(runtime.NumCPU()*2, 10000)
		globalPool.Start()
	})
	return globalPool
}

// NewPool 创建新的goroutine池
func NewPool(maxWorkers int, maxQueue int) *Pool {
	ctx, cancel := context.WithCancel(context.Background())

	pool := &Pool{
		WorkerPool: make(chan chan *Task, maxWorkers),
		TaskQueue:  make(chan *Task, maxQueue),
		Workers:    make([]*Worker, maxWorkers),
		ctx:        ctx,
		cancel:     cancel,
	}

	for i := 0; i < maxWorkers; i++ {
		pool.Workers[i] = &Worker{
			ID:         i + 1,
			TaskChan:   make(chan *Task),
			WorkerPool: pool.WorkerPool,
			ctx:        ctx,
		}
	}

	return pool
}

// Start 启动goroutine池
func (p *Pool) Start() {
	p.wg.Add(1)
	go p.dispatcher()

	for _, worker := range p.Workers {
		p.wg.Add(1)
		go worker.start(&p.wg, p)
	}

	log.Printf("Goroutine池已启动，工作协程数: %d", len(p.Workers))
}

// Stop 停止goroutine池，等待在途任务完成
func (p *Pool) Stop() {
	p.cancel()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		log.Print("Goroutine池停止超时")
	}
}

// Submit 提交任务
func (p *Pool) Submit(task *Task) error {
	select {
	case p.TaskQueue <- task:
		atomic.AddInt64(&p.totalTasks, 1)
		return nil
	case <-p.ctx.Done():
		return fmt.Errorf("goroutine池已停止")
	default:
		return fmt.Errorf("任务队列已满")
	}
}

// SubmitFunc 提交一个无回调的任务
func (p *Pool) SubmitFunc(id string, fn func() error) error {
	return p.Submit(&Task{ID: id, Function: fn, Timeout: 30 * time.Second})
}

// Stats 返回 (总数, 已完成, 失败)
func (p *Pool) Stats() (int64, int64, int64) {
	return atomic.LoadInt64(&p.totalTasks),
		atomic.LoadInt64(&p.completedTasks),
		atomic.LoadInt64(&p.failedTasks)
}

// dispatcher 把任务分发给空闲worker
func (p *Pool) dispatcher() {
	defer p.wg.Done()

	for {
		select {
		case task := <-p.TaskQueue:
			select {
			case taskChan := <-p.WorkerPool:
				taskChan <- task
			case <-p.ctx.Done():
				return
			}
		case <-p.ctx.Done():
			return
		}
	}
}

// start worker主循环
func (w *Worker) start(wg *sync.WaitGroup, p *Pool) {
	defer wg.Done()

	for {
		// 把自己的任务通道注册回池里
		select {
		case w.WorkerPool <- w.TaskChan:
		case <-w.ctx.Done():
			return
		}

		select {
		case task := <-w.TaskChan:
			w.execute(task, p)
		case <-w.ctx.Done():
			return
		}
	}
}

// execute 执行任务，带超时和重试
func (w *Worker) execute(task *Task, p *Pool) {
	var err error
	for attempt := 0; attempt <= task.Retry; attempt++ {
		err = w.runOnce(task)
		if err == nil {
			break
		}
	}

	if err != nil {
		atomic.AddInt64(&p.failedTasks, 1)
		log.Printf("任务 %s 执行失败: %v", task.ID, err)
	} else {
		atomic.AddInt64(&p.completedTasks, 1)
	}

	if task.Callback != nil {
		task.Callback(err)
	}
}

func (w *Worker) runOnce(task *Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panic: %v", r)
		}
	}()

	if task.Timeout <= 0 {
		return task.Function()
	}

	done := make(chan error, 1)
	go func() {
		done <- task.Function()
	}()

	select {
	case err := <-done:
		return err
	case <-time.After(task.Timeout):
		return fmt.Errorf("task %s timeout after %v", task.ID, task.Timeout)
	}
}
