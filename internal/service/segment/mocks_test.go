package segment

import (
	"context"
	"sync"

	"github.com/heartmarshall/segmentbench/internal/classifier"
	"github.com/heartmarshall/segmentbench/internal/domain"
)

var _ segmentRepo = &segmentRepoMock{}

type segmentRepoMock struct {
	InsertFunc    func(ctx context.Context, customerID string, seg domain.Segment, confidence float64) (domain.ClassificationRecord, error)
	RecentForFunc func(ctx context.Context, customerID string, limit int) ([]domain.ClassificationRecord, error)

	calls struct {
		Insert []struct {
			CustomerID string
			Seg        domain.Segment
			Confidence float64
		}
		RecentFor []struct {
			CustomerID string
			Limit      int
		}
	}
	lockInsert    sync.RWMutex
	lockRecentFor sync.RWMutex
}

func (mock *segmentRepoMock) Insert(ctx context.Context, customerID string, seg domain.Segment, confidence float64) (domain.ClassificationRecord, error) {
	if mock.InsertFunc == nil {
		panic("segmentRepoMock.InsertFunc: method is nil but segmentRepo.Insert was just called")
	}
	callInfo := struct {
		CustomerID string
		Seg        domain.Segment
		Confidence float64
	}{CustomerID: customerID, Seg: seg, Confidence: confidence}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, customerID, seg, confidence)
}

func (mock *segmentRepoMock) InsertCalls() []struct {
	CustomerID string
	Seg        domain.Segment
	Confidence float64
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *segmentRepoMock) RecentFor(ctx context.Context, customerID string, limit int) ([]domain.ClassificationRecord, error) {
	if mock.RecentForFunc == nil {
		panic("segmentRepoMock.RecentForFunc: method is nil but segmentRepo.RecentFor was just called")
	}
	callInfo := struct {
		CustomerID string
		Limit      int
	}{CustomerID: customerID, Limit: limit}
	mock.lockRecentFor.Lock()
	mock.calls.RecentFor = append(mock.calls.RecentFor, callInfo)
	mock.lockRecentFor.Unlock()
	return mock.RecentForFunc(ctx, customerID, limit)
}

func (mock *segmentRepoMock) RecentForCalls() []struct {
	CustomerID string
	Limit      int
} {
	mock.lockRecentFor.RLock()
	calls := mock.calls.RecentFor
	mock.lockRecentFor.RUnlock()
	return calls
}

var _ model = &modelMock{}

type modelMock struct {
	ClassifyFunc func(ctx context.Context, text string) (classifier.Result, error)

	calls struct {
		Classify []struct {
			Text string
		}
	}
	lockClassify sync.RWMutex
}

func (mock *modelMock) Classify(ctx context.Context, text string) (classifier.Result, error) {
	if mock.ClassifyFunc == nil {
		panic("modelMock.ClassifyFunc: method is nil but model.Classify was just called")
	}
	callInfo := struct{ Text string }{Text: text}
	mock.lockClassify.Lock()
	mock.calls.Classify = append(mock.calls.Classify, callInfo)
	mock.lockClassify.Unlock()
	return mock.ClassifyFunc(ctx, text)
}

func (mock *modelMock) ClassifyCalls() []struct{ Text string } {
	mock.lockClassify.RLock()
	calls := mock.calls.Classify
	mock.lockClassify.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
