package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"

	"github.com/TinoSantoso/Playtopia-pos/internal/adapter/store"
	"github.com/TinoSantoso/Playtopia-pos/internal/core/ports"
)

func TestRedisLoad(t *testing.T) {
	client, mockRedis := redismock.NewClientMock()
	s := store.NewRedis(client)
	ctx := context.Background()

	mockRedis.ExpectGet(ports.KeyZones).RedisNil()

	data, found, err := s.Load(ctx, ports.KeyZones)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, data)

	blob := []byte(`[{"name":"Toddler Zone"}]`)
	mockRedis.ExpectGet(ports.KeyZones).SetVal(string(blob))

	data, found, err = s.Load(ctx, ports.KeyZones)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, blob, data)

	if err := mockRedis.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestRedisSave(t *testing.T) {
	client, mockRedis := redismock.NewClientMock()
	s := store.NewRedis(client)
	ctx := context.Background()

	blob := []byte(`[]`)
	mockRedis.ExpectSet(ports.KeyVisitors, blob, 0).SetVal("OK")

	assert.NoError(t, s.Save(ctx, ports.KeyVisitors, blob))

	mockRedis.ExpectSet(ports.KeyVisitors, blob, 0).SetErr(errors.New("connection refused"))

	err := s.Save(ctx, ports.KeyVisitors, blob)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), ports.KeyVisitors)

	if err := mockRedis.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}
