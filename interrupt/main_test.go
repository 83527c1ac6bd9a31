package interrupt

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignalRunsHandlersInReverse(t *testing.T) {
	exited := make(chan int, 1)
	exit = func(code int) { exited <- code }
	var order []int
	AddHandler(func() { order = append(order, 1) })
	AddHandler(func() { order = append(order, 2) })
	signals <- os.Interrupt
	select {
	case code := <-exited:
		require.Equal(t, 1, code)
	case <-time.After(5 * time.Second):
		t.Fatal("handlers did not run")
	}
	require.Equal(t, []int{2, 1}, order)
	<-Done()
	Run()
	require.Equal(t, []int{2, 1}, order)
}
