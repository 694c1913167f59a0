package scan

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type article struct {
	ID    int64
	Title string
}

func (a article) ResourceID() int64 { return a.ID }

type author struct {
	ID int64
}

func (a author) ResourceID() int64 { return a.ID }

// service is the open generic contract under test.
type service[R any] interface {
	Get(id int64) (R, error)
	List() ([]R, error)
}

// repository is a second contract family, used for ambiguity checks.
type repository[R any] interface {
	Find(id int64) (R, error)
}

type articleService struct{}

func (articleService) Get(int64) (article, error) { return article{}, nil }
func (articleService) List() ([]article, error)   { return nil, nil }

// ptrAuthorService implements its contract with pointer receivers only.
type ptrAuthorService struct{}

func (*ptrAuthorService) Get(int64) (author, error) { return author{}, nil }
func (*ptrAuthorService) List() ([]author, error)   { return nil, nil }

type secondArticleService struct{}

func (secondArticleService) Get(int64) (article, error) { return article{}, nil }
func (secondArticleService) List() ([]article, error)   { return nil, nil }

var (
	articleType = reflect.TypeOf(article{})
	authorType  = reflect.TypeOf(author{})
)

func serviceContract(t *testing.T) *Contract {
	t.Helper()
	c, err := NewContract("Service", 1)
	require.NoError(t, err)
	require.NoError(t, Bind[service[article]](c, articleType))
	require.NoError(t, Bind[service[author]](c, authorType))
	return c
}

func TestFindImplementation(t *testing.T) {
	c := serviceContract(t)
	universe := UniverseOf(0, "junk", article{}, articleService{}, author{})

	match, ok, err := NewScanner(nil).FindImplementation(universe, c, articleType)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, reflect.TypeOf(articleService{}), match.Implementation)
	assert.Equal(t, reflect.TypeOf((*service[article])(nil)).Elem(), match.Contract)
}

func TestFindImplementationPointerReceivers(t *testing.T) {
	c := serviceContract(t)
	universe := UniverseOf(ptrAuthorService{})

	match, ok, err := NewScanner(nil).FindImplementation(universe, c, authorType)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, reflect.TypeOf(ptrAuthorService{}), match.Implementation)
}

func TestFindImplementationNoMatch(t *testing.T) {
	c := serviceContract(t)
	universe := UniverseOf(0, "junk", article{})

	// No match is a valid outcome, not an error.
	_, ok, err := NewScanner(nil).FindImplementation(universe, c, articleType)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindImplementationFirstMatchWins(t *testing.T) {
	c := serviceContract(t)
	s := NewScanner(nil)

	match, ok, err := s.FindImplementation(UniverseOf(articleService{}, secondArticleService{}), c, articleType)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, reflect.TypeOf(articleService{}), match.Implementation)

	// Enumeration order decides the winner.
	match, ok, err = s.FindImplementation(UniverseOf(secondArticleService{}, articleService{}), c, articleType)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, reflect.TypeOf(secondArticleService{}), match.Implementation)
}

func TestFindImplementationPreconditions(t *testing.T) {
	c := serviceContract(t)
	s := NewScanner(nil)
	universe := UniverseOf(articleService{})

	_, _, err := s.FindImplementation(nil, c, articleType)
	assert.ErrorIs(t, err, ErrEmptyUniverse)

	_, _, err = s.FindImplementation(universe, nil, articleType)
	assert.ErrorIs(t, err, ErrNilContract)

	_, _, err = s.FindImplementation(universe, c)
	assert.ErrorIs(t, err, ErrNoTypeArguments)

	_, _, err = s.FindImplementation(universe, c, nil)
	assert.ErrorIs(t, err, ErrNoTypeArguments)

	// Scanning for an argument nobody bound is a configuration gap, not a
	// miss.
	_, _, err = s.FindImplementation(universe, c, reflect.TypeOf(""))
	assert.ErrorIs(t, err, ErrUnboundArgument)
}

func TestFindDerived(t *testing.T) {
	base := reflect.TypeOf((*interface{ ResourceID() int64 })(nil)).Elem()
	universe := UniverseOf(article{}, author{}, articleService{}, 0, "junk")

	var got []reflect.Type
	for typ := range NewScanner(nil).FindDerived(universe, base) {
		got = append(got, typ)
	}

	assert.Equal(t, []reflect.Type{articleType, authorType}, got)
}

func TestFindDerivedConcreteBase(t *testing.T) {
	universe := UniverseOf(article{}, author{}, 0)

	var got []reflect.Type
	for typ := range NewScanner(nil).FindDerived(universe, articleType) {
		got = append(got, typ)
	}

	// The base itself is present and concrete, so it is part of the result.
	assert.Equal(t, []reflect.Type{articleType}, got)
}

func TestFindDerivedIsLazy(t *testing.T) {
	base := reflect.TypeOf((*interface{ ResourceID() int64 })(nil)).Elem()
	universe := UniverseOf(article{}, author{})

	var got []reflect.Type
	for typ := range NewScanner(nil).FindDerived(universe, base) {
		got = append(got, typ)
		break
	}

	assert.Equal(t, []reflect.Type{articleType}, got)
}

func TestFindDerivedNilBase(t *testing.T) {
	count := 0
	for range NewScanner(nil).FindDerived(UniverseOf(article{}), nil) {
		count++
	}
	assert.Zero(t, count)
}

func TestFindDerivedContract(t *testing.T) {
	c := serviceContract(t)
	universe := UniverseOf(articleService{}, secondArticleService{}, ptrAuthorService{}, 0)

	derived, err := NewScanner(nil).FindDerivedContract(universe, c, articleType)
	require.NoError(t, err)
	assert.Equal(t, []reflect.Type{
		reflect.TypeOf(articleService{}),
		reflect.TypeOf(secondArticleService{}),
	}, derived)

	derived, err = NewScanner(nil).FindDerivedContract(universe, c, authorType)
	require.NoError(t, err)
	assert.Equal(t, []reflect.Type{reflect.TypeOf(ptrAuthorService{})}, derived)
}

func TestFindDerivedContractPreconditions(t *testing.T) {
	c := serviceContract(t)

	_, err := NewScanner(nil).FindDerivedContract(nil, c, articleType)
	assert.ErrorIs(t, err, ErrEmptyUniverse)

	_, err = NewScanner(nil).FindDerivedContract(UniverseOf(articleService{}), c)
	assert.ErrorIs(t, err, ErrNoTypeArguments)
}

func TestUniverseOf(t *testing.T) {
	u := UniverseOf(article{}, &author{}, nil, 0)

	require.Len(t, u, 3)
	assert.True(t, u.Contains(articleType))
	assert.True(t, u.Contains(reflect.TypeOf(&author{})))
	assert.False(t, u.Contains(reflect.TypeOf("")))
}
