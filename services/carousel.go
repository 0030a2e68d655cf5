package services

import (
	"sync"
	"time"

	"github.com/yeremiapane/restaurant-site/models"
	"github.com/yeremiapane/restaurant-site/utils"
)

const (
	DefaultCarouselInterval = 3 * time.Second

	phoneBreakpoint  = 640
	tabletBreakpoint = 1024
)

// VisibleCount menentukan jumlah slide berdasarkan lebar layar
func VisibleCount(width int) int {
	switch {
	case width < phoneBreakpoint:
		return 1
	case width < tabletBreakpoint:
		return 2
	default:
		return 3
	}
}

// NextIndex advances by one and wraps to 0 once the window would run past the
// end of a catalog of n items.
func NextIndex(index, visible, n int) int {
	if index+visible >= n {
		return 0
	}
	return index + 1
}

// Window returns visible consecutive items starting at index, topped up with
// items from the start of the list when it runs short.
func Window(items []models.MenuItem, index, visible int) []models.MenuItem {
	if len(items) == 0 || visible <= 0 {
		return []models.MenuItem{}
	}
	if index < 0 || index >= len(items) {
		index = 0
	}

	end := index + visible
	if end > len(items) {
		end = len(items)
	}
	window := append([]models.MenuItem{}, items[index:end]...)
	if missing := visible - len(window); missing > 0 {
		if missing > len(items) {
			missing = len(items)
		}
		window = append(window, items[:missing]...)
	}
	return window
}

// WindowPublisher menerima setiap frame carousel
type WindowPublisher interface {
	PublishFrame(frame models.CarouselFrame) error
}

// Carousel advances through the catalog on a fixed interval. One carousel is
// owned by one view; Stop must be called when the view goes away. After Start
// every frame is published from the ticker goroutine, so frames leave in the
// same order the state changed.
type Carousel struct {
	Interval time.Duration

	items     []models.MenuItem
	publisher WindowPublisher

	mu      sync.Mutex
	index   int
	visible int
	started bool

	resizeChan chan int
	stopChan   chan struct{}
	stopOnce   sync.Once
	done       chan struct{}
}

func NewCarousel(items []models.MenuItem, width int, publisher WindowPublisher) *Carousel {
	return &Carousel{
		Interval:   DefaultCarouselInterval,
		items:      items,
		publisher:  publisher,
		visible:    VisibleCount(width),
		resizeChan: make(chan int),
		stopChan:   make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Frame returns the window currently on screen.
func (c *Carousel) Frame() models.CarouselFrame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frameLocked()
}

func (c *Carousel) frameLocked() models.CarouselFrame {
	return models.CarouselFrame{
		Index:   c.index,
		Visible: c.visible,
		Items:   Window(c.items, c.index, c.visible),
	}
}

// Start publishes the initial frame and runs the ticker loop in a goroutine.
func (c *Carousel) Start() {
	c.mu.Lock()
	c.started = true
	frame := c.frameLocked()
	c.mu.Unlock()
	c.publish(frame)

	go func() {
		defer close(c.done)
		ticker := time.NewTicker(c.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				c.publish(c.advance())
			case visible := <-c.resizeChan:
				frame, changed := c.setVisible(visible)
				if !changed {
					continue
				}
				// cadence dimulai ulang dari resize; tick lama dibuang
				ticker.Reset(c.Interval)
				select {
				case <-ticker.C:
				default:
				}
				c.publish(frame)
			case <-c.stopChan:
				return
			}
		}
	}()
}

// Resize swaps the window size for the new viewport width. When the size
// changes the new frame is published at once and the tick cadence restarts
// from now, like a freshly mounted timer. Before Start only the size changes.
func (c *Carousel) Resize(width int) {
	visible := VisibleCount(width)

	c.mu.Lock()
	started := c.started
	c.mu.Unlock()
	if !started {
		c.setVisible(visible)
		return
	}

	select {
	case c.resizeChan <- visible:
	case <-c.stopChan:
	}
}

// Stop cancels the timer. It is safe to call more than once.
func (c *Carousel) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopChan)
	})
}

// Done is closed once the ticker goroutine has exited.
func (c *Carousel) Done() <-chan struct{} {
	return c.done
}

func (c *Carousel) setVisible(visible int) (models.CarouselFrame, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if visible == c.visible {
		return models.CarouselFrame{}, false
	}
	c.visible = visible
	return c.frameLocked(), true
}

func (c *Carousel) advance() models.CarouselFrame {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = NextIndex(c.index, c.visible, len(c.items))
	return c.frameLocked()
}

func (c *Carousel) publish(frame models.CarouselFrame) {
	if c.publisher == nil {
		return
	}
	if err := c.publisher.PublishFrame(frame); err != nil {
		utils.ErrorLogger.Printf("Error publishing carousel frame: %v", err)
	}
}
