// Package ratelimit は固定ウィンドウ方式のレート制限を提供します。
// ログイン試行の抑制に使用します。
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter はキーごとの操作回数を制限するインターフェースです。
type Limiter interface {
	// Allow はkeyに対する操作を1回消費し、上限内であればtrueを返します。
	Allow(ctx context.Context, key string) (bool, error)
}

type window struct {
	count     int
	lastReset time.Time
}

// MemoryLimiter はプロセス内メモリで動作するLimiterです。
// 単一インスタンス構成やRedisが無い環境で使用します。
type MemoryLimiter struct {
	mu       sync.Mutex
	limit    int           // ウィンドウあたりの上限
	interval time.Duration // どの単位でリセットするか
	windows  map[string]*window
	now      func() time.Time
}

// NewMemoryLimiter は新しいMemoryLimiterのインスタンスを生成します。
func NewMemoryLimiter(limit int, interval time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		limit:    limit,
		interval: interval,
		windows:  make(map[string]*window),
		now:      time.Now,
	}
}

// Allow はレートリミットの上限に達しているかを確認します。
func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[key]
	// interval を過ぎたらカウントリセット
	if !ok || now.Sub(w.lastReset) >= l.interval {
		w = &window{lastReset: now}
		l.windows[key] = w
		l.sweep(now)
	}

	w.count++
	return w.count <= l.limit, nil
}

// sweep は期限切れのウィンドウを削除し、マップの肥大化を防ぎます。
func (l *MemoryLimiter) sweep(now time.Time) {
	for k, w := range l.windows {
		if now.Sub(w.lastReset) >= l.interval {
			delete(l.windows, k)
		}
	}
}
