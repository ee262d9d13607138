package memory

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.llib.dev/exemplar/enterprise/repository"
	"go.llib.dev/exemplar/enterprise/repository/bolt"
	"go.llib.dev/exemplar/pkg/errorkit"
)

// Demo walks through the lifecycle of the Order aggregate on the in-memory
// adapter, then replays the same steps against the BoltDB adapter on a
// scratch file. The point of the exercise: code written against the
// repository role interfaces cannot tell the two apart.
func Demo(ctx context.Context, w io.Writer) (rErr error) {
	fmt.Fprintln(w, "-- memory adapter --")
	repo := NewRepository[repository.Order, repository.OrderID](NewMemory())
	if err := lifecycle(ctx, w, repo); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "-- bolt adapter --")
	file, err := os.CreateTemp("", "exemplar-orders-*.db")
	if err != nil {
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	defer func() { rErr = errorkit.Merge(rErr, os.Remove(file.Name())) }()
	db, err := bolt.Open(file.Name())
	if err != nil {
		return err
	}
	defer errorkit.Finish(&rErr, db.Close)
	return lifecycle(ctx, w, bolt.NewRepository[repository.Order, repository.OrderID](db))
}

// lifecycle takes the repository through create, find, update and delete,
// depending only on the OrderRepository port.
func lifecycle(ctx context.Context, w io.Writer, repo repository.OrderRepository) error {
	placedAt := time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC)

	table := repository.Order{
		ID:        "ord-1001",
		Reference: "oak table",
		Total:     repository.Money{Cents: 79900, Currency: "EUR"},
		PlacedAt:  placedAt,
	}
	if err := repo.Create(ctx, &table); err != nil {
		return err
	}
	mug := repository.Order{
		ID:        "ord-1002",
		Reference: "tea mug",
		Total:     repository.Money{Cents: 1250, Currency: "EUR"},
		PlacedAt:  placedAt.Add(15 * time.Minute),
	}
	if err := repo.Create(ctx, &mug); err != nil {
		return err
	}
	fmt.Fprintf(w, "created %q and %q\n", table.ID, mug.ID)

	if err := repo.Create(ctx, &repository.Order{ID: table.ID, Reference: "imposter"}); err != nil {
		fmt.Fprintln(w, "creating a duplicate:", err)
	}

	got, found, err := repo.FindByID(ctx, table.ID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("expected %q to be in the repository", table.ID)
	}
	fmt.Fprintf(w, "%s costs %s\n", got.Reference, got.Total)

	mug.Total.Cents = 1490
	if err := repo.Update(ctx, &mug); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s price raised to %s\n", mug.Reference, mug.Total)

	fmt.Fprintln(w, "stored orders:")
	for ord, err := range repo.FindAll(ctx) {
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s  %-9s  %s\n", ord.ID, ord.Reference, ord.Total)
	}

	if err := repo.DeleteByID(ctx, mug.ID); err != nil {
		return err
	}
	var remaining int
	for _, err := range repo.FindAll(ctx) {
		if err != nil {
			return err
		}
		remaining++
	}
	fmt.Fprintf(w, "after deleting %q, %d order remains\n", mug.ID, remaining)

	if err := repo.DeleteByID(ctx, mug.ID); err != nil {
		fmt.Fprintln(w, "deleting it again:", err)
	}
	return nil
}
