package catalog

import (
	"go.llib.dev/exemplar/enterprise/activerecord"
	"go.llib.dev/exemplar/enterprise/contextmap"
	"go.llib.dev/exemplar/enterprise/gateway"
	"go.llib.dev/exemplar/enterprise/publishedlanguage"
	"go.llib.dev/exemplar/enterprise/repository/memory"
	"go.llib.dev/exemplar/katas/binarytree"
	"go.llib.dev/exemplar/katas/heaps"
	"go.llib.dev/exemplar/katas/lrucache"
	"go.llib.dev/exemplar/katas/slidingwindow"
	"go.llib.dev/exemplar/katas/stacks"
	"go.llib.dev/exemplar/katas/twopointers"
	"go.llib.dev/exemplar/pattern/builder"
	"go.llib.dev/exemplar/pattern/decorator"
	"go.llib.dev/exemplar/pattern/facade"
	"go.llib.dev/exemplar/pattern/factory"
	"go.llib.dev/exemplar/pattern/prototype"
	"go.llib.dev/exemplar/refactoring/extractfunction"
	"go.llib.dev/exemplar/refactoring/extractvariable"
	"go.llib.dev/exemplar/refactoring/guardclauses"
	"go.llib.dev/exemplar/refactoring/parameterobject"
	"go.llib.dev/exemplar/refactoring/pipeline"
	"go.llib.dev/exemplar/refactoring/polymorphism"
)

// Studies are named after their package path inside the corpus,
// so `exemplar run pattern/factory` reads like an import.
func init() {
	Register(Entry{
		Name:     "pattern/factory",
		Topic:    TopicPatterns,
		Synopsis: "factory method on receipt exporting",
		Run:      factory.Demo,
	})
	Register(Entry{
		Name:     "pattern/builder",
		Topic:    TopicPatterns,
		Synopsis: "builder pattern on invoice assembly",
		Run:      builder.Demo,
	})
	Register(Entry{
		Name:     "pattern/decorator",
		Topic:    TopicPatterns,
		Synopsis: "decorator pattern on price quoting",
		Run:      decorator.Demo,
	})
	Register(Entry{
		Name:     "pattern/facade",
		Topic:    TopicPatterns,
		Synopsis: "facade pattern on order checkout",
		Run:      facade.Demo,
	})
	Register(Entry{
		Name:     "pattern/prototype",
		Topic:    TopicPatterns,
		Synopsis: "prototype pattern on document templates",
		Run:      prototype.Demo,
	})
	Register(Entry{
		Name:     "enterprise/contextmap",
		Topic:    TopicEnterprise,
		Synopsis: "bounded contexts and their integrations as data",
		Run:      contextmap.Demo,
	})
	Register(Entry{
		Name:     "enterprise/publishedlanguage",
		Topic:    TopicEnterprise,
		Synopsis: "versioned event schema shared between contexts",
		Run:      publishedlanguage.Demo,
	})
	Register(Entry{
		Name:     "enterprise/repository",
		Topic:    TopicEnterprise,
		Synopsis: "repository pattern with swappable adapters",
		Run:      memory.Demo,
	})
	Register(Entry{
		Name:     "enterprise/activerecord",
		Topic:    TopicEnterprise,
		Synopsis: "active record over a SQLite product table",
		Run:      activerecord.Demo,
	})
	Register(Entry{
		Name:     "enterprise/gateway",
		Topic:    TopicEnterprise,
		Synopsis: "gateway idiom over a payment provider API",
		Run:      gateway.Demo,
	})
	Register(Entry{
		Name:     "refactoring/extractfunction",
		Topic:    TopicRefactoring,
		Synopsis: "extract function on an invoice renderer",
		Run:      extractfunction.Demo,
	})
	Register(Entry{
		Name:     "refactoring/guardclauses",
		Topic:    TopicRefactoring,
		Synopsis: "guard clauses in severance payout rules",
		Run:      guardclauses.Demo,
	})
	Register(Entry{
		Name:     "refactoring/parameterobject",
		Topic:    TopicRefactoring,
		Synopsis: "introduce parameter object on shipping quotes",
		Run:      parameterobject.Demo,
	})
	Register(Entry{
		Name:     "refactoring/polymorphism",
		Topic:    TopicRefactoring,
		Synopsis: "replace plan pricing conditional with polymorphism",
		Run:      polymorphism.Demo,
	})
	Register(Entry{
		Name:     "refactoring/pipeline",
		Topic:    TopicRefactoring,
		Synopsis: "replace order stats loop with iterator stages",
		Run:      pipeline.Demo,
	})
	Register(Entry{
		Name:     "refactoring/extractvariable",
		Topic:    TopicRefactoring,
		Synopsis: "extract variable in a freight cost formula",
		Run:      extractvariable.Demo,
	})
	Register(Entry{
		Name:     "katas/binarytree",
		Topic:    TopicKatas,
		Synopsis: "binary tree traversals and serialization",
		Run:      binarytree.Demo,
	})
	Register(Entry{
		Name:     "katas/slidingwindow",
		Topic:    TopicKatas,
		Synopsis: "sliding window exercises over strings and slices",
		Run:      slidingwindow.Demo,
	})
	Register(Entry{
		Name:     "katas/stacks",
		Topic:    TopicKatas,
		Synopsis: "monotonic stack exercises",
		Run:      stacks.Demo,
	})
	Register(Entry{
		Name:     "katas/heaps",
		Topic:    TopicKatas,
		Synopsis: "priority queue exercises through container/heap",
		Run:      heaps.Demo,
	})
	Register(Entry{
		Name:     "katas/lrucache",
		Topic:    TopicKatas,
		Synopsis: "least recently used cache with O(1) operations",
		Run:      lrucache.Demo,
	})
	Register(Entry{
		Name:     "katas/twopointers",
		Topic:    TopicKatas,
		Synopsis: "converging index pair exercises",
		Run:      twopointers.Demo,
	})
}
