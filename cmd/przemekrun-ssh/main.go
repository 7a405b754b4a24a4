package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/milk9111/przemekrun/common"
	"github.com/milk9111/przemekrun/prefabs"
	"github.com/milk9111/przemekrun/render"
	"github.com/milk9111/przemekrun/session"
	"github.com/milk9111/przemekrun/tty"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = ".ssh/przemekrun_host_key"
	defaultVariant     = "keyboard"
)

func main() {
	host := common.GetEnv("PRZEMEK_SSH_HOST", defaultHost)
	port := common.GetEnv("PRZEMEK_SSH_PORT", defaultPort)
	hostKeyPath := common.GetEnv("PRZEMEK_SSH_HOST_KEY", defaultHostKeyPath)
	variantName := common.GetEnv("PRZEMEK_VARIANT", defaultVariant)

	// Fail at startup rather than on the first connection.
	if _, err := prefabs.LoadVariant(variantName); err != nil {
		log.Fatal(err)
	}
	log.Printf("SSH config: host=%s port=%s hostKeyPath=%s variant=%s", host, port, hostKeyPath, variantName)

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			gameMiddleware(variantName),
			activeterm.Middleware(),
			logging.Middleware(),
		),
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	log.Printf("Starting SSH server on %s", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-done
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}

// gameMiddleware runs one independent, silent game per SSH session.
func gameMiddleware(variantName string) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			defer next(sess)

			variant, err := prefabs.LoadVariant(variantName)
			if err != nil {
				fmt.Fprintf(sess, "Error: %v\n", err)
				return
			}

			game, err := session.New(session.Options{
				Variant: variant,
				Rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
			})
			if err != nil {
				fmt.Fprintf(sess, "Error: %v\n", err)
				return
			}

			screen, err := tty.NewSSHScreen(sess)
			if err != nil {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				log.Printf("session %s: %v", sess.User(), err)
				return
			}
			if err := screen.Init(); err != nil {
				log.Printf("session %s: init screen: %v", sess.User(), err)
				return
			}

			err = tty.Run(sess.Context(), screen, game)
			screen.Fini()
			if err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("session %s: %v", sess.User(), err)
			}
			log.Printf("session %s ended with score %s", sess.User(), render.FormatScore(game.Snapshot().Score))
		}
	}
}
