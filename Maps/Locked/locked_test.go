package Locked

import (
	"sync"
	"testing"

	"github.com/g-m-twostay/chaintable/Maps/ChainTable"
)

const (
	blockSize = 256
	blockNum  = 64
)

func TestMap_All(t *testing.T) {
	M := New(ChainTable.New[int, int](nil))
	wg := &sync.WaitGroup{}
	wg.Add(blockNum)
	for j := 0; j < blockNum; j++ {
		go func(l, h int) {
			defer wg.Done()
			for i := l; i < h; i++ {
				M.Insert(i, i)
			}
			for i := l; i < h; i++ {
				if v, ok := M.Find(i); !ok || v != i {
					t.Errorf("not put: %v", i)
					return
				}
			}
			for i := l; i < h; i++ {
				if _, replaced := M.Insert(i, -i); !replaced {
					t.Errorf("not replaced: %v", i)
					return
				}
			}
		}(j*blockSize, (j+1)*blockSize)
	}
	wg.Wait()
	if M.Size() != blockNum*blockSize {
		t.Errorf("wrong size %d", M.Size())
	}
	keys, vals := M.Snapshot()
	for i := range keys {
		if vals[i] != -keys[i] {
			t.Errorf("key %d has value %d", keys[i], vals[i])
		}
	}
}

func TestMap_Update(t *testing.T) {
	M := New(ChainTable.New[string, int](nil))
	wg := &sync.WaitGroup{}
	wg.Add(blockNum)
	for range blockNum {
		go func() {
			defer wg.Done()
			for range blockSize {
				M.Update("hits", func(old int, _ bool) int { return old + 1 })
			}
		}()
	}
	wg.Wait()
	if v, ok := M.Find("hits"); !ok || v != blockNum*blockSize {
		t.Errorf("lost updates: %v %v", v, ok)
	}
	if M.IsEmpty() || !M.Contains("hits") || M.Size() != 1 {
		t.Error("wrong membership")
	}
}
