package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleInput() StudentInput {
	return StudentInput{
		Name:       "Alice Smith",
		Roll:       "12",
		Class:      "I",
		Section:    "A",
		Notes:      "",
		Attendance: 0,
	}
}

func TestStudentCreate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		svc := &StudentService{Store: newTestStore(t)}

		in := sampleInput()
		in.Notes = "allergic to peanuts"
		in.Attendance = 12

		id, err := svc.Create(ctx, in)
		require.NoError(t, err)
		require.NotEmpty(t, id)

		stored, err := svc.Store.Students().GetStudentByID(ctx, id)
		require.NoError(t, err)
		require.Equal(t, "Alice Smith", stored.Name)
		require.Equal(t, "12", stored.Roll)
		require.Equal(t, "I", stored.Class)
		require.Equal(t, "A", stored.Section)
		require.Equal(t, "allergic to peanuts", stored.Notes)
		require.Equal(t, 12, stored.Attendance)
	})

	t.Run("missing required fields", func(t *testing.T) {
		svc := &StudentService{Store: newTestStore(t)}

		for _, mutate := range []func(*StudentInput){
			func(in *StudentInput) { in.Name = "" },
			func(in *StudentInput) { in.Roll = "  " },
			func(in *StudentInput) { in.Class = "" },
			func(in *StudentInput) { in.Section = "" },
		} {
			in := sampleInput()
			mutate(&in)
			_, err := svc.Create(ctx, in)
			require.ErrorIs(t, err, ErrMissingFields)
		}
	})

	t.Run("negative attendance clamps to zero", func(t *testing.T) {
		svc := &StudentService{Store: newTestStore(t)}

		in := sampleInput()
		in.Attendance = -5

		id, err := svc.Create(ctx, in)
		require.NoError(t, err)

		stored, err := svc.Store.Students().GetStudentByID(ctx, id)
		require.NoError(t, err)
		require.Equal(t, 0, stored.Attendance)
	})

	t.Run("duplicate roll class section triple", func(t *testing.T) {
		svc := &StudentService{Store: newTestStore(t)}

		_, err := svc.Create(ctx, sampleInput())
		require.NoError(t, err)

		// Same triple, different name: still a conflict.
		in := sampleInput()
		in.Name = "Someone Else"
		_, err = svc.Create(ctx, in)
		require.ErrorIs(t, err, ErrDuplicateStudent)

		// Changing any one of the three is allowed.
		in = sampleInput()
		in.Section = "B"
		_, err = svc.Create(ctx, in)
		require.NoError(t, err)
	})
}

func TestStudentSearch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := &StudentService{Store: newTestStore(t)}

	seed := []StudentInput{
		{Name: "Alice Smith", Roll: "2", Class: "I", Section: "B"},
		{Name: "Bob Jones", Roll: "7", Class: "II", Section: "A"},
		{Name: "Carol White", Roll: "1", Class: "I", Section: "A"},
		{Name: "Dan Brown", Roll: "17", Class: "II", Section: "B"},
	}
	for _, in := range seed {
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	names := func(q, class, section string) []string {
		students, err := svc.Search(ctx, q, class, section)
		require.NoError(t, err)
		out := make([]string, 0, len(students))
		for _, s := range students {
			out = append(out, s.Name)
		}
		return out
	}

	t.Run("no filters returns all ordered by class section roll", func(t *testing.T) {
		require.Equal(t,
			[]string{"Carol White", "Alice Smith", "Bob Jones", "Dan Brown"},
			names("", "", ""),
		)
	})

	t.Run("query matches name substring", func(t *testing.T) {
		require.Equal(t, []string{"Alice Smith"}, names("ali", "", ""))
	})

	t.Run("query matches roll substring", func(t *testing.T) {
		// "7" appears in rolls 7 and 17.
		require.Equal(t, []string{"Bob Jones", "Dan Brown"}, names("7", "", ""))
	})

	t.Run("class filters exactly", func(t *testing.T) {
		require.Equal(t, []string{"Bob Jones", "Dan Brown"}, names("", "II", ""))
	})

	t.Run("filters are AND combined", func(t *testing.T) {
		require.Equal(t, []string{"Bob Jones"}, names("jones", "II", ""))
		require.Empty(t, names("alice", "II", ""))
	})

	t.Run("section filter", func(t *testing.T) {
		require.Equal(t, []string{"Carol White", "Bob Jones"}, names("", "", "A"))
	})

	t.Run("no matches yields empty set", func(t *testing.T) {
		require.Empty(t, names("zzz", "", ""))
	})
}

func TestStudentUpdate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("replaces all fields", func(t *testing.T) {
		svc := &StudentService{Store: newTestStore(t)}

		id, err := svc.Create(ctx, sampleInput())
		require.NoError(t, err)

		err = svc.Update(ctx, id, StudentInput{
			Name:       "Alice Jones",
			Roll:       "13",
			Class:      "II",
			Section:    "C",
			Notes:      "moved up a class",
			Attendance: 40,
		})
		require.NoError(t, err)

		stored, err := svc.Store.Students().GetStudentByID(ctx, id)
		require.NoError(t, err)
		require.Equal(t, "Alice Jones", stored.Name)
		require.Equal(t, "13", stored.Roll)
		require.Equal(t, "II", stored.Class)
		require.Equal(t, "C", stored.Section)
		require.Equal(t, "moved up a class", stored.Notes)
		require.Equal(t, 40, stored.Attendance)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := &StudentService{Store: newTestStore(t)}

		err := svc.Update(ctx, "no-such-id", sampleInput())
		require.ErrorIs(t, err, ErrStudentNotFound)
	})

	t.Run("update into an occupied triple conflicts", func(t *testing.T) {
		svc := &StudentService{Store: newTestStore(t)}

		_, err := svc.Create(ctx, sampleInput())
		require.NoError(t, err)

		other := sampleInput()
		other.Name = "Bob Jones"
		other.Roll = "13"
		id, err := svc.Create(ctx, other)
		require.NoError(t, err)

		// Move Bob onto Alice's (roll, class, section).
		other.Roll = "12"
		err = svc.Update(ctx, id, other)
		require.ErrorIs(t, err, ErrDuplicateStudent)
	})

	t.Run("missing required fields", func(t *testing.T) {
		svc := &StudentService{Store: newTestStore(t)}

		id, err := svc.Create(ctx, sampleInput())
		require.NoError(t, err)

		in := sampleInput()
		in.Name = ""
		require.ErrorIs(t, svc.Update(ctx, id, in), ErrMissingFields)
	})
}

func TestStudentDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := &StudentService{Store: newTestStore(t)}

	id, err := svc.Create(ctx, sampleInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, id))

	_, err = svc.Search(ctx, "", "", "")
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(ctx, id), ErrStudentNotFound)
}
