package fstdict

import "fmt"

func ExampleBuildFST() {
	fst, err := BuildFST([]Pair{
		{In: []byte("a"), Out: 1},
		{In: []byte("ab"), Out: 2},
	})
	if err != nil {
		panic(err)
	}
	fmt.Println(fst.Search([]byte("a")))
	fmt.Println(fst.Search([]byte("ab")))
	fmt.Println(fst.Search([]byte("abc")))
	// Output:
	// [1]
	// [2]
	// []
}

func ExampleFST_CommonPrefixSearch() {
	fst, err := BuildFST([]Pair{
		{In: []byte("a"), Out: 1},
		{In: []byte("ab"), Out: 2},
		{In: []byte("abc"), Out: 3},
	})
	if err != nil {
		panic(err)
	}
	for _, cfg := range fst.CommonPrefixSearch([]byte("abcd")) {
		fmt.Println(cfg.Length, cfg.Outputs)
	}
	// Output:
	// 1 [1]
	// 2 [2]
	// 3 [3]
}
