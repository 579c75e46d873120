package animales

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	nextID int64
	byID   map[int64]Animal
	err    error
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Animal{}}
}

func (r *testRepo) Create(ctx context.Context, a Animal) (Animal, error) {
	if r.err != nil {
		return Animal{}, r.err
	}
	r.nextID++
	a.ID = r.nextID
	r.byID[a.ID] = a
	return a, nil
}

func (r *testRepo) Update(ctx context.Context, a Animal) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.byID[a.ID]; !ok {
		return ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Animal, bool, error) {
	if r.err != nil {
		return Animal{}, false, r.err
	}
	a, ok := r.byID[id]
	return a, ok, nil
}

func (r *testRepo) List(ctx context.Context) ([]Animal, error) {
	out := make([]Animal, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// -------------------------
// Tests
// -------------------------

var testNow = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo)
	svc.now = func() time.Time { return testNow }
	return svc, repo
}

func holstein() CreateInput {
	return CreateInput{
		Especie:         " Bovino ",
		Raza:            "Holstein",
		FechaNacimiento: time.Date(2020, 1, 1, 15, 30, 0, 0, time.UTC),
		Peso:            450.0,
	}
}

func TestService_Create_AssignsIDAndDefaults(t *testing.T) {
	svc, _ := newTestService()

	a, err := svc.Create(context.Background(), holstein())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if a.ID != 1 {
		t.Fatalf("expected id 1, got %d", a.ID)
	}
	if a.Especie != "Bovino" {
		t.Fatalf("expected trimmed especie, got %q", a.Especie)
	}
	if a.EstadoSalud != EstadoSano {
		t.Fatalf("expected default estado sano, got %s", a.EstadoSalud)
	}
	if !a.FechaNacimiento.Equal(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected fecha_nacimiento truncated to date, got %v", a.FechaNacimiento)
	}
	if a.CreatedAt != testNow || a.UpdatedAt != testNow {
		t.Fatalf("expected CreatedAt/UpdatedAt to be now")
	}
}

func TestService_Create_RejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(in *CreateInput)
	}{
		{"especie vacia", func(in *CreateInput) { in.Especie = "  " }},
		{"peso negativo", func(in *CreateInput) { in.Peso = -1 }},
		{"sin fecha de nacimiento", func(in *CreateInput) { in.FechaNacimiento = time.Time{} }},
		{"nacimiento en el futuro", func(in *CreateInput) { in.FechaNacimiento = testNow.Add(24 * time.Hour) }},
		{"estado desconocido", func(in *CreateInput) { in.EstadoSalud = "zombie" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo := newTestService()
			in := holstein()
			tc.mutate(&in)

			_, err := svc.Create(context.Background(), in)
			if err != ErrInvalidInput {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if len(repo.byID) != 0 {
				t.Fatalf("expected nothing persisted")
			}
		})
	}
}

func TestService_GetByID_NotFoundIsNotAnError(t *testing.T) {
	svc, _ := newTestService()

	_, found, err := svc.GetByID(context.Background(), 99)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if found {
		t.Fatalf("expected found=false")
	}
}

func TestService_UpdateSalud_PatchSemantics(t *testing.T) {
	svc, _ := newTestService()
	a, err := svc.Create(context.Background(), holstein())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	later := testNow.Add(time.Hour)
	svc.now = func() time.Time { return later }

	peso := 470.5
	updated, err := svc.UpdateSalud(context.Background(), a.ID, UpdateInput{Peso: &peso})
	if err != nil {
		t.Fatalf("UpdateSalud error: %v", err)
	}
	if updated.Peso != peso {
		t.Fatalf("expected peso %v, got %v", peso, updated.Peso)
	}
	if updated.EstadoSalud != EstadoSano {
		t.Fatalf("expected estado untouched, got %s", updated.EstadoSalud)
	}
	if updated.UpdatedAt != later {
		t.Fatalf("expected UpdatedAt to change")
	}

	estado := EstadoEnTratamiento
	updated, err = svc.UpdateSalud(context.Background(), a.ID, UpdateInput{EstadoSalud: &estado})
	if err != nil {
		t.Fatalf("UpdateSalud #2 error: %v", err)
	}
	if updated.EstadoSalud != EstadoEnTratamiento || updated.Peso != peso {
		t.Fatalf("unexpected animal after update: %#v", updated)
	}
}

func TestService_UpdateSalud_Errors(t *testing.T) {
	svc, _ := newTestService()
	a, _ := svc.Create(context.Background(), holstein())

	neg := -3.0
	if _, err := svc.UpdateSalud(context.Background(), a.ID, UpdateInput{Peso: &neg}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for negative peso, got %v", err)
	}

	bad := EstadoSalud("desconocido")
	if _, err := svc.UpdateSalud(context.Background(), a.ID, UpdateInput{EstadoSalud: &bad}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for bad estado, got %v", err)
	}

	peso := 10.0
	if _, err := svc.UpdateSalud(context.Background(), 42, UpdateInput{Peso: &peso}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_RepoFaultIsPropagated(t *testing.T) {
	svc, repo := newTestService()
	repo.err = errors.New("db down")

	if _, _, err := svc.GetByID(context.Background(), 1); err == nil {
		t.Fatalf("expected infrastructure error")
	}
	if _, err := svc.Create(context.Background(), holstein()); err == nil || errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}
