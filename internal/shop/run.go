package shop

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// Run drives the session loop: prompt, read a line, process it to
// completion, write the response, repeat. Returns when the shopper
// quits, input is exhausted, or the context is cancelled.
func (s *Session) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	s.logger.Info("session starting", "products", len(s.products))

	fmt.Fprint(w, s.renderCurrent())
	fmt.Fprint(w, prompt)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			s.logger.Info("session stopping: context cancelled")
			return err
		}

		out, quit, err := s.Handle(ctx, scanner.Text())
		if err != nil {
			return err
		}
		fmt.Fprint(w, out)
		if quit {
			s.logger.Info("session ended", "item_count", s.cart.ItemCount())
			return nil
		}
		fmt.Fprint(w, prompt)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	s.logger.Info("session stopping: input closed")
	return nil
}

const prompt = "\nshop> "
