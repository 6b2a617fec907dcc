// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"vigenere/internal/cipher"
	"vigenere/internal/config"
	"vigenere/internal/logger"
	"vigenere/internal/mock"
	"vigenere/models"
)

func newTestApp(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*App,
	*mock.MockCollector,
	*mock.MockService,
	*bytes.Buffer,
) {
	t.Helper()
	collector := mock.NewMockCollector(ctrl)
	svc := mock.NewMockService(ctrl)
	out := &bytes.Buffer{}

	cfg := &config.StructuredConfig{
		App: config.App{EmptyKeyPolicy: models.EmptyKeyReject},
		Log: config.Log{Level: "info"},
	}

	return NewApp(cfg, collector, svc, out, logger.Nop()), collector, svc, out
}

func TestApp_Run_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, collector, svc, out := newTestApp(t, ctrl)

	collector.EXPECT().Collect().Return("Key1!", "Attack at dawn!", nil)
	svc.EXPECT().NormalizeKey(models.Key("Key1!")).Return(models.Key("key"), nil)
	svc.EXPECT().
		Encipher(models.PlainText("Attack at dawn!"), models.Key("key")).
		Return(models.CipherText("Kxrkgi er hygr!"), nil)

	err := a.Run()
	require.NoError(t, err)
	assert.Equal(t, "\nKxrkgi er hygr!\n", out.String())
}

func TestApp_Run_CollectFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, collector, _, out := newTestApp(t, ctrl)

	collector.EXPECT().Collect().Return("", "", assert.AnError)

	err := a.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, out.String(), "nothing may be printed after a failure")
}

func TestApp_Run_NormalizeFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, collector, svc, out := newTestApp(t, ctrl)

	collector.EXPECT().Collect().Return("key", "text", nil)
	svc.EXPECT().NormalizeKey(models.Key("key")).Return(nil, cipher.ErrNilKey)

	err := a.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, cipher.ErrNilKey)
	assert.Empty(t, out.String())
}

func TestApp_Run_EncipherFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, collector, svc, out := newTestApp(t, ctrl)

	collector.EXPECT().Collect().Return("123", "text", nil)
	svc.EXPECT().NormalizeKey(models.Key("123")).Return(models.Key{}, nil)
	svc.EXPECT().
		Encipher(models.PlainText("text"), models.Key{}).
		Return(nil, cipher.ErrEmptyKey)

	err := a.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, cipher.ErrEmptyKey)
	assert.Empty(t, out.String())
}

// The full flow against the real cipher service, with only the collector
// mocked: the canonical transcript from the reference tool.
func TestApp_Run_EndToEndTranscript(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	collector := mock.NewMockCollector(ctrl)
	out := &bytes.Buffer{}
	cfg := &config.StructuredConfig{
		App: config.App{EmptyKeyPolicy: models.EmptyKeyReject},
		Log: config.Log{Level: "info"},
	}

	a := NewApp(cfg, collector, cipher.NewService(cfg.App.EmptyKeyPolicy), out, logger.Nop())

	collector.EXPECT().Collect().Return("Password", "Plain text: ", nil)

	err := a.Run()
	require.NoError(t, err)
	assert.Equal(t, "\nElsaj khmt: \n", out.String())
}

// An all-digit password normalizes to an empty key and is rejected before
// anything reaches the output stream.
func TestApp_Run_EmptyNormalizedKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	collector := mock.NewMockCollector(ctrl)
	out := &bytes.Buffer{}
	cfg := &config.StructuredConfig{
		App: config.App{EmptyKeyPolicy: models.EmptyKeyReject},
		Log: config.Log{Level: "info"},
	}

	a := NewApp(cfg, collector, cipher.NewService(cfg.App.EmptyKeyPolicy), out, logger.Nop())

	collector.EXPECT().Collect().Return("123", "attack at dawn", nil)

	err := a.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, cipher.ErrEmptyKey)
	assert.Empty(t, out.String())
}

// Under the pass-through policy the same input prints the plain text
// unchanged.
func TestApp_Run_EmptyNormalizedKeyPassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	collector := mock.NewMockCollector(ctrl)
	out := &bytes.Buffer{}
	cfg := &config.StructuredConfig{
		App: config.App{EmptyKeyPolicy: models.EmptyKeyPassThrough},
		Log: config.Log{Level: "info"},
	}

	a := NewApp(cfg, collector, cipher.NewService(cfg.App.EmptyKeyPolicy), out, logger.Nop())

	collector.EXPECT().Collect().Return("123", "attack at dawn", nil)

	err := a.Run()
	require.NoError(t, err)
	assert.Equal(t, "\nattack at dawn\n", out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("stream closed")
}

func TestApp_Run_PrintFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	collector := mock.NewMockCollector(ctrl)
	svc := mock.NewMockService(ctrl)
	cfg := &config.StructuredConfig{
		App: config.App{EmptyKeyPolicy: models.EmptyKeyReject},
	}

	a := NewApp(cfg, collector, svc, failingWriter{}, logger.Nop())

	collector.EXPECT().Collect().Return("key", "text", nil)
	svc.EXPECT().NormalizeKey(models.Key("key")).Return(models.Key("key"), nil)
	svc.EXPECT().
		Encipher(models.PlainText("text"), models.Key("key")).
		Return(models.CipherText("divd"), nil)

	err := a.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), MsgPrintFailed)
}
