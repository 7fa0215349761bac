package middleware

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// redis6Server speaks enough RESP2 for the limiter and, like Redis 6, rejects
// HELLO and EXPIRE options such as NX.
type redis6Server struct {
	listener net.Listener

	mu       sync.Mutex
	counters map[string]int64
	expires  []string
}

func startRedis6Server(t *testing.T) *redis6Server {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := &redis6Server{listener: listener, counters: map[string]int64{}}
	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			go srv.serve(conn)
		}
	}()
	t.Cleanup(func() { listener.Close() })
	return srv
}

func (s *redis6Server) serve(conn net.Conn) {
	defer conn.Close()
	reader := bufio.NewReader(conn)
	for {
		args, err := readCommand(reader)
		if err != nil {
			return
		}
		if _, err := io.WriteString(conn, s.reply(args)); err != nil {
			return
		}
	}
}

func (s *redis6Server) reply(args []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch strings.ToUpper(args[0]) {
	case "HELLO":
		return "-ERR unknown command 'HELLO'\r\n"
	case "PING":
		return "+PONG\r\n"
	case "INCR":
		s.counters[args[1]]++
		return fmt.Sprintf(":%d\r\n", s.counters[args[1]])
	case "EXPIRE":
		if len(args) != 3 {
			return "-ERR wrong number of arguments for 'expire' command\r\n"
		}
		s.expires = append(s.expires, args[1])
		return ":1\r\n"
	case "TTL":
		return ":42\r\n"
	default:
		return "+OK\r\n"
	}
}

func (s *redis6Server) expireCalls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.expires...)
}

func readCommand(reader *bufio.Reader) ([]string, error) {
	header, err := reader.ReadString('\n')
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(header, "*") {
		return nil, fmt.Errorf("unexpected header %q", header)
	}
	n, err := strconv.Atoi(strings.TrimSpace(header[1:]))
	if err != nil {
		return nil, err
	}

	args := make([]string, 0, n)
	for i := 0; i < n; i++ {
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil, err
		}
		size, err := strconv.Atoi(strings.TrimSpace(line[1:]))
		if err != nil {
			return nil, err
		}
		buf := make([]byte, size+2)
		if _, err := io.ReadFull(reader, buf); err != nil {
			return nil, err
		}
		args = append(args, string(buf[:size]))
	}
	return args, nil
}

func TestRateLimitMiddleware_StoreUnavailable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	router := setupTestRouter()
	router.Use(RateLimitMiddleware(client, 5, time.Minute))
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := doGet(router, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Rate limit check failed"}`, w.Body.String())
}

func TestRateLimitMiddleware_Redis6(t *testing.T) {
	srv := startRedis6Server(t)
	client := redis.NewClient(&redis.Options{Addr: srv.listener.Addr().String()})
	defer client.Close()

	router := setupTestRouter()
	router.Use(RateLimitMiddleware(client, 2, time.Minute))
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	first := doGet(router, "")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	second := doGet(router, "")
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "0", second.Header().Get("X-RateLimit-Remaining"))

	third := doGet(router, "")
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.Equal(t, "42", third.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"Rate limit exceeded"}`, third.Body.String())

	// The window is set once, on the first hit.
	assert.Equal(t, []string{"rate_limit:/test:"}, srv.expireCalls())
}
