package scriptures_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/scripturemastery/server/internal/model"
	"github.com/scripturemastery/server/internal/scriptures"
)

type DatasetSuite struct {
	suite.Suite
}

func TestDatasetSuite(t *testing.T) {
	suite.Run(t, new(DatasetSuite))
}

func (s *DatasetSuite) TestTotalCount() {
	s.Equal(100, scriptures.Count())
	s.Len(scriptures.All(), 100)
}

func (s *DatasetSuite) TestTwentyFivePerCanon() {
	for _, canon := range []model.Canon{
		model.CanonOldTestament,
		model.CanonNewTestament,
		model.CanonBookOfMormon,
		model.CanonDoctrineAndCovenants,
	} {
		s.Len(scriptures.ByCanon(canon), 25, string(canon))
	}
}

func (s *DatasetSuite) TestReferencesUnique() {
	seen := make(map[string]bool)
	for _, sc := range scriptures.All() {
		key := fmt.Sprintf("%s %d:%s", sc.Reference.Book, sc.Reference.Chapter, sc.Reference.Verse)
		s.False(seen[key], "duplicate reference %s", key)
		seen[key] = true
	}
}

func (s *DatasetSuite) TestEntriesComplete() {
	for _, sc := range scriptures.All() {
		s.NotEmpty(sc.Text)
		s.NotEmpty(sc.Reference.Book)
		s.Greater(sc.Reference.Chapter, 0)
		s.NotEmpty(sc.Reference.Verse)
		s.NotEmpty(sc.Canon)
	}
}

func (s *DatasetSuite) TestAllReturnsStableOrder() {
	first := scriptures.All()
	second := scriptures.All()
	s.Equal(first, second)
}
