// Package store keeps benchmark records in memory. A single manager
// goroutine owns the records; callers talk to it over a channel, so a store
// can be shared by any number of harness workers.
package store

import (
	"errors"
	"sort"
	"sync"

	"github.com/golang/glog"
)

var (
	// ErrAlreadyExist error returns when Add attempts to add already existing item
	ErrAlreadyExist = errors.New("already exists")
	// ErrNotFound error returns when Remove attempts to remove a non existing item
	ErrNotFound = errors.New("not found")
	// ErrStopped error returns when an operation is requested after Stop
	ErrStopped = errors.New("store is stopped")
)

type storeOp uint8

const (
	addItem storeOp = iota + 1
	removeItem
	getItem
	listItems
)

// Storable is anything which can be identified by a key.
type Storable interface {
	Key() string
}

// Manager defines operations supported by the store.
type Manager interface {
	Add(Storable) error
	Remove(string) error
	Get(string) Storable
	// List returns all items ordered by key.
	List() []Storable
	Len() int
	Stop()
}

var _ Manager = &itemStore{}

type mgrReply struct {
	items []Storable
	err   error
}

type storeReq struct {
	op      storeOp
	key     string
	item    Storable
	replyCh chan mgrReply
}

type itemStore struct {
	stopCh   chan struct{}
	stopOnce sync.Once
	opCh     chan storeReq
}

func (s *itemStore) request(req storeReq) mgrReply {
	select {
	case <-s.stopCh:
		return mgrReply{err: ErrStopped}
	default:
	}
	req.replyCh = make(chan mgrReply, 1)
	select {
	case s.opCh <- req:
	case <-s.stopCh:
		return mgrReply{err: ErrStopped}
	}
	return <-req.replyCh
}

func (s *itemStore) Add(i Storable) error {
	return s.request(storeReq{op: addItem, key: i.Key(), item: i}).err
}

func (s *itemStore) Remove(key string) error {
	return s.request(storeReq{op: removeItem, key: key}).err
}

func (s *itemStore) Get(key string) Storable {
	r := s.request(storeReq{op: getItem, key: key})
	if r.err != nil {
		return nil
	}
	return r.items[0]
}

func (s *itemStore) List() []Storable {
	return s.request(storeReq{op: listItems}).items
}

func (s *itemStore) Len() int {
	return len(s.List())
}

// Stop terminates the manager, calling it again is a no-op.
func (s *itemStore) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
}

func (s *itemStore) manager() {
	items := make(map[string]Storable)
	for {
		select {
		case <-s.stopCh:
			glog.V(6).Infof("Store stopped with %d items", len(items))
			return
		case msg := <-s.opCh:
			switch msg.op {
			case addItem:
				glog.V(6).Infof("Adding item: %s", msg.key)
				if _, ok := items[msg.key]; ok {
					msg.replyCh <- mgrReply{err: ErrAlreadyExist}
					continue
				}
				items[msg.key] = msg.item
				msg.replyCh <- mgrReply{}
			case removeItem:
				glog.V(6).Infof("Removing item: %s", msg.key)
				if _, ok := items[msg.key]; !ok {
					msg.replyCh <- mgrReply{err: ErrNotFound}
					continue
				}
				delete(items, msg.key)
				msg.replyCh <- mgrReply{}
			case getItem:
				glog.V(6).Infof("Getting item: %s", msg.key)
				it, ok := items[msg.key]
				if !ok {
					msg.replyCh <- mgrReply{err: ErrNotFound}
					continue
				}
				msg.replyCh <- mgrReply{items: []Storable{it}}
			case listItems:
				l := make([]Storable, 0, len(items))
				for _, item := range items {
					l = append(l, item)
				}
				sort.Slice(l, func(i, j int) bool { return l[i].Key() < l[j].Key() })
				msg.replyCh <- mgrReply{items: l}
			}
		}
	}
}

// NewStore returns a new instance of a store, any object which is compatible
// with the interface Storable, can be stored in the store.
func NewStore() Manager {
	s := &itemStore{
		stopCh: make(chan struct{}),
		opCh:   make(chan storeReq),
	}
	// Starting store manager
	go s.manager()

	return s
}
