package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RedisStore keeps exam sessions in redis so an in-progress attempt survives
// a process restart mid-event. Values are JSON-encoded ExamSessions with the
// configured TTL; expiry is redis's job.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Begin(phone string, quizID uint) (string, error) {
	token := uuid.NewString()
	sess := &ExamSession{
		Phone:     phone,
		QuizID:    quizID,
		StartedAt: time.Now(),
	}
	if err := s.put(token, sess); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisStore) Get(token string) (*ExamSession, bool) {
	raw, err := s.client.Get(context.Background(), s.key(token)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Msg("RedisStore: GET failed")
		}
		return nil, false
	}
	var sess ExamSession
	if err := json.Unmarshal(raw, &sess); err != nil {
		log.Warn().Err(err).Msg("RedisStore: corrupt session value, dropping")
		_ = s.client.Del(context.Background(), s.key(token)).Err()
		return nil, false
	}
	return &sess, true
}

func (s *RedisStore) AttachQuestionSet(token string, questionIDs []uint) error {
	sess, ok := s.Get(token)
	if !ok {
		return ErrSessionNotFound
	}
	sess.QuestionIDs = append([]uint(nil), questionIDs...)
	return s.put(token, sess)
}

func (s *RedisStore) ConsumeQuestionSet(token string) ([]uint, bool) {
	sess, ok := s.Get(token)
	if !ok || len(sess.QuestionIDs) == 0 {
		return nil, false
	}
	ids := sess.QuestionIDs
	sess.QuestionIDs = nil
	if err := s.put(token, sess); err != nil {
		log.Warn().Err(err).Msg("RedisStore: failed to clear consumed question set")
	}
	return ids, true
}

func (s *RedisStore) Clear(token string) {
	if err := s.client.Del(context.Background(), s.key(token)).Err(); err != nil {
		log.Warn().Err(err).Msg("RedisStore: DEL failed")
	}
}

func (s *RedisStore) put(token string, sess *ExamSession) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(context.Background(), s.key(token), raw, s.ttl).Err()
}

func (s *RedisStore) key(token string) string {
	return "exam:session:" + token
}
