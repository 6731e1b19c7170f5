// Package memory 提供进程内存储适配器。
// 作为零依赖兜底后端使用，同时是存储契约测试的天然目标。
// 无跨请求事务边界：并发管理端写入下“唯一推荐视频”约束只能尽力保证。
package memory

import (
	"sync"
	"time"

	"fanhub-go/internal/model"
)

// Store 内存存储：按整数 ID 建 map，计数器单调递增
type Store struct {
	mu sync.RWMutex

	users         map[int64]*model.User
	videos        map[int64]*model.Video
	downloads     map[int64]*model.Download
	notifications map[int64]*model.Notification
	subscribers   map[int64]*model.Subscriber
	comments      map[int64]*model.Comment
	settings      *model.SiteSetting

	// 每个实体独立计数器
	userSeq         int64
	videoSeq        int64
	downloadSeq     int64
	notificationSeq int64
	subscriberSeq   int64
	commentSeq      int64
}

// New 创建内存存储并预置站点设置单例
func New() *Store {
	return &Store{
		users:         make(map[int64]*model.User),
		videos:        make(map[int64]*model.Video),
		downloads:     make(map[int64]*model.Download),
		notifications: make(map[int64]*model.Notification),
		subscribers:   make(map[int64]*model.Subscriber),
		comments:      make(map[int64]*model.Comment),
		settings: &model.SiteSetting{
			ID:              1,
			NewsTickerItems: []string{"欢迎来到频道站点！"},
			IsLiveStreaming: false,
			LastUpdated:     time.Now(),
		},
	}
}

func (s *Store) Name() string {
	return "memory"
}

func (s *Store) Close() error {
	return nil
}
