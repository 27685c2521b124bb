package main

/*
DNA序列工具: GC含量, 转录, ORF
*/

func main() {
	Execute()
}
