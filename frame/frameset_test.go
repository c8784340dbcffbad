package frame

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/flowframe/errs"
)

func newTestFrameSet(t *testing.T, names ...string) *FrameSet {
	t.Helper()

	set := NewFrameSet()
	for _, name := range names {
		require.NoError(t, set.AddFrame(name, newTestFrame(t)))
	}

	return set
}

func testPheno(t *testing.T, labels ...string) *PhenoTable {
	t.Helper()

	p := NewPhenoTable([]string{"group"})
	for i, label := range labels {
		group := "treated"
		if i%2 == 1 {
			group = "control"
		}
		require.NoError(t, p.AddRow(label, map[string]string{"group": group}))
	}

	return p
}

func TestFrameSet_AddFrame(t *testing.T) {
	set := NewFrameSet()
	f := newTestFrame(t)

	require.NoError(t, set.AddFrame("s1", f))
	require.Equal(t, 1, set.Len())
	require.True(t, set.HasFrame("s1"))

	t.Run("duplicate name", func(t *testing.T) {
		err := set.AddFrame("s1", newTestFrame(t))
		require.ErrorIs(t, err, errs.ErrDuplicateSample)
		require.Equal(t, 1, set.Len())
	})

	t.Run("member is held by reference", func(t *testing.T) {
		member, err := set.Frame("s1")
		require.NoError(t, err)
		require.True(t, member.SharesStore(f))
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := set.Frame("nope")
		require.ErrorIs(t, err, errs.ErrUnknownSample)
	})
}

func TestFrameSet_InsertionOrder(t *testing.T) {
	set := newTestFrameSet(t, "s3", "s1", "s2")
	require.Equal(t, []string{"s3", "s1", "s2"}, set.Names())

	var iterated []string
	for name := range set.Frames() {
		iterated = append(iterated, name)
	}
	require.Equal(t, []string{"s3", "s1", "s2"}, iterated)
}

func TestFrameSet_SetPheno(t *testing.T) {
	t.Run("matching label set", func(t *testing.T) {
		set := newTestFrameSet(t, "s1", "s2")
		require.NoError(t, set.SetPheno(testPheno(t, "s2", "s1"))) // order-independent
		require.NotNil(t, set.Pheno())
	})

	t.Run("one renamed row fails and leaves metadata unset", func(t *testing.T) {
		set := newTestFrameSet(t, "s1", "s2")
		err := set.SetPheno(testPheno(t, "s1", "sX"))
		require.ErrorIs(t, err, errs.ErrPhenoMismatch)
		require.Nil(t, set.Pheno())
	})

	t.Run("extra row fails", func(t *testing.T) {
		set := newTestFrameSet(t, "s1", "s2")
		err := set.SetPheno(testPheno(t, "s1", "s2", "s3"))
		require.ErrorIs(t, err, errs.ErrPhenoMismatch)
	})

	t.Run("missing row fails", func(t *testing.T) {
		set := newTestFrameSet(t, "s1", "s2")
		err := set.SetPheno(testPheno(t, "s1"))
		require.ErrorIs(t, err, errs.ErrPhenoMismatch)
	})

	t.Run("table is cloned on assignment", func(t *testing.T) {
		set := newTestFrameSet(t, "s1", "s2")
		p := testPheno(t, "s1", "s2")
		require.NoError(t, set.SetPheno(p))

		require.NoError(t, p.AddRow("s3", map[string]string{"group": "x"}))
		require.Equal(t, 2, set.Pheno().Len())
	})
}

func TestFrameSet_Subset(t *testing.T) {
	set := newTestFrameSet(t, "s1", "s2", "s3", "s4")
	require.NoError(t, set.SetPheno(testPheno(t, "s1", "s2", "s3", "s4")))

	sub := set.Subset(func(name string, _ *Frame) bool {
		return name == "s2" || name == "s4"
	})

	require.Equal(t, []string{"s2", "s4"}, sub.Names())

	t.Run("members share backing stores with originals", func(t *testing.T) {
		orig, err := set.Frame("s2")
		require.NoError(t, err)
		member, err := sub.Frame("s2")
		require.NoError(t, err)
		require.True(t, member.SharesStore(orig))
	})

	t.Run("pheno filtered identically", func(t *testing.T) {
		require.Equal(t, []string{"s2", "s4"}, sub.Pheno().Labels())
		group, ok := sub.Pheno().Value("s2", "group")
		require.True(t, ok)
		require.Equal(t, "control", group)
	})

	t.Run("mutation via subset member visible in original", func(t *testing.T) {
		member, err := sub.Frame("s4")
		require.NoError(t, err)
		require.NoError(t, member.WriteColumn("FSC-A", []float64{0, 0, 0, 0, 0}))

		orig, err := set.Frame("s4")
		require.NoError(t, err)
		col, err := orig.Column("FSC-A")
		require.NoError(t, err)
		require.Equal(t, []float64{0, 0, 0, 0, 0}, col)
	})
}

func TestFrameSet_SubsetNames(t *testing.T) {
	set := newTestFrameSet(t, "s1", "s2", "s3")

	sub, err := set.SubsetNames([]string{"s3", "s1"})
	require.NoError(t, err)
	require.Equal(t, []string{"s3", "s1"}, sub.Names())

	_, err = set.SubsetNames([]string{"s1", "nope"})
	require.ErrorIs(t, err, errs.ErrUnknownSample)
}

func TestFrameSet_DeepCopy(t *testing.T) {
	set := newTestFrameSet(t, "s1", "s2")
	require.NoError(t, set.SetPheno(testPheno(t, "s1", "s2")))

	cp := set.DeepCopy()
	require.Equal(t, set.Names(), cp.Names())

	t.Run("members share nothing", func(t *testing.T) {
		orig, err := set.Frame("s1")
		require.NoError(t, err)
		copied, err := cp.Frame("s1")
		require.NoError(t, err)
		require.False(t, copied.SharesStore(orig))

		require.NoError(t, orig.WriteColumn("FSC-A", []float64{7, 7, 7, 7, 7}))
		col, err := copied.Column("FSC-A")
		require.NoError(t, err)
		require.Equal(t, []float64{10, 20, 30, 40, 50}, col)
	})

	t.Run("pheno cloned", func(t *testing.T) {
		require.NotSame(t, set.Pheno(), cp.Pheno())
		require.Equal(t, set.Pheno().Labels(), cp.Pheno().Labels())
	})
}

func TestMap(t *testing.T) {
	set := newTestFrameSet(t, "s1", "s2", "s3")

	t.Run("keyed results", func(t *testing.T) {
		counts, err := Map(set, func(_ string, f *Frame) (int, error) {
			return f.NumEvents(), nil
		})
		require.NoError(t, err)
		require.Equal(t, map[string]int{"s1": 5, "s2": 5, "s3": 5}, counts)
	})

	t.Run("simplified slice aligned with Names", func(t *testing.T) {
		names, err := MapSlice(set, func(name string, _ *Frame) (string, error) {
			return strings.ToUpper(name), nil
		})
		require.NoError(t, err)
		require.Equal(t, []string{"S1", "S2", "S3"}, names)
	})

	t.Run("insertion order traversal", func(t *testing.T) {
		var visited []string
		_, err := MapSlice(set, func(name string, _ *Frame) (struct{}, error) {
			visited = append(visited, name)
			return struct{}{}, nil
		})
		require.NoError(t, err)
		require.Equal(t, []string{"s1", "s2", "s3"}, visited)
	})

	t.Run("error aborts", func(t *testing.T) {
		_, err := Map(set, func(name string, _ *Frame) (int, error) {
			if name == "s2" {
				return 0, errs.ErrUnknownChannel
			}
			return 0, nil
		})
		require.ErrorIs(t, err, errs.ErrUnknownChannel)
	})
}

func TestPhenoTable(t *testing.T) {
	p := NewPhenoTable([]string{"group", "day"})

	require.NoError(t, p.AddRow("s1", map[string]string{"group": "a", "day": "1"}))
	require.NoError(t, p.AddRow("s2", map[string]string{"group": "b"}))

	t.Run("duplicate label", func(t *testing.T) {
		err := p.AddRow("s1", nil)
		require.ErrorIs(t, err, errs.ErrDuplicateSample)
	})

	t.Run("missing cell reads empty", func(t *testing.T) {
		v, ok := p.Value("s2", "day")
		require.True(t, ok)
		require.Equal(t, "", v)
	})

	t.Run("missing row", func(t *testing.T) {
		_, ok := p.Value("nope", "group")
		require.False(t, ok)
	})

	t.Run("clone independence", func(t *testing.T) {
		cp := p.Clone()
		require.NoError(t, cp.AddRow("s3", nil))
		require.Equal(t, 2, p.Len())
		require.Equal(t, []string{"group", "day"}, cp.Columns())
	})
}
