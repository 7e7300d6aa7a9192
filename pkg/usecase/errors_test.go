package usecase_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/safework-lab/jhaboard/pkg/usecase"
)

func TestErrors_SentinelErrors(t *testing.T) {
	// Test that sentinel errors are not nil
	tests := []struct {
		name string
		err  error
	}{
		{"ErrSheetNotFound", usecase.ErrSheetNotFound},
		{"ErrRecordNotFound", usecase.ErrRecordNotFound},
		{"ErrCrossTabUnavailable", usecase.ErrCrossTabUnavailable},
		{"ErrReloadNotConfigured", usecase.ErrReloadNotConfigured},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, tt.err).NotNil()
		})
	}
}

func TestErrors_ErrorsAreDistinct(t *testing.T) {
	// Test that sentinel errors are distinct
	gt.Bool(t, errors.Is(usecase.ErrSheetNotFound, usecase.ErrRecordNotFound)).False()
	gt.Bool(t, errors.Is(usecase.ErrRecordNotFound, usecase.ErrCrossTabUnavailable)).False()
	gt.Bool(t, errors.Is(usecase.ErrCrossTabUnavailable, usecase.ErrReloadNotConfigured)).False()
}
